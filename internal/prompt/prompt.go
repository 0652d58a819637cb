// Package prompt assembles the grounding document and conversation turns
// sent to the generation backend.
package prompt

import (
	"fmt"
	"strings"

	"github.com/arturoeanton/go-product-match-openai/internal/domain"
	"github.com/arturoeanton/go-product-match-openai/internal/port"
)

const systemInstruction = `You are a helpful shopping assistant. Answer the question truthfully using the provided product document when it is relevant; otherwise answer generally. Do not over-elaborate on product detail.`

// Static example turns that steer answer style. Not derived from the request.
var fewShotTurns = []port.Turn{
	{Role: port.RoleAssistant, Content: "Hello! Ask me anything about our products and I'll help you out."},
	{Role: port.RoleUser, Content: "Document:\nWhole grain oats 750g, rich in fiber.\n\nQ: Is the oatmeal whole grain?\nA:"},
	{Role: port.RoleAssistant, Content: "Yes, the oatmeal is made from whole grain oats and is rich in fiber."},
}

// GroundingDocument joins the product descriptions in order and collapses
// every run of whitespace (spaces, tabs, newlines) into a single space, so
// the document is always a single line. An empty product set yields "".
func GroundingDocument(products []domain.Product) string {
	parts := make([]string, len(products))
	for i, p := range products {
		parts[i] = p.Description
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// Assemble builds the full conversation for a query: the fixed system
// instruction, the few-shot turns, and a final user turn carrying the
// grounding document and the question. The document may be empty when no
// products matched; the generator then falls back to a general answer.
func Assemble(query string, products []domain.Product) []port.Turn {
	doc := GroundingDocument(products)

	turns := make([]port.Turn, 0, len(fewShotTurns)+2)
	turns = append(turns, port.Turn{Role: port.RoleSystem, Content: systemInstruction})
	turns = append(turns, fewShotTurns...)
	turns = append(turns, port.Turn{
		Role:    port.RoleUser,
		Content: fmt.Sprintf("Document:\n%s\n\nQ: %s\nA:", doc, query),
	})
	return turns
}
