package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturoeanton/go-product-match-openai/internal/domain"
	"github.com/arturoeanton/go-product-match-openai/internal/port"
)

func TestGroundingDocumentJoinsDescriptionsInOrder(t *testing.T) {
	products := []domain.Product{
		{Description: "Fresh apples, 1kg"},
		{Description: "Apple concentrate 500ml"},
	}

	doc := GroundingDocument(products)

	assert.Equal(t, "Fresh apples, 1kg Apple concentrate 500ml", doc)
}

func TestGroundingDocumentNormalizesWhitespace(t *testing.T) {
	products := []domain.Product{
		{Description: "Organic\n  Bananas\t\tfrom Ecuador"},
	}

	doc := GroundingDocument(products)

	assert.Equal(t, "Organic Bananas from Ecuador", doc)
}

func TestGroundingDocumentIsSingleLine(t *testing.T) {
	products := []domain.Product{
		{Description: "  leading and trailing  "},
		{Description: "multi\nline\r\ndescription"},
		{Description: "tabs\there"},
	}

	doc := GroundingDocument(products)

	assert.NotContains(t, doc, "\n")
	assert.NotContains(t, doc, "\t")
	assert.NotContains(t, doc, "  ")
	assert.False(t, strings.HasPrefix(doc, " "))
	assert.False(t, strings.HasSuffix(doc, " "))
}

func TestGroundingDocumentEmptyProducts(t *testing.T) {
	assert.Equal(t, "", GroundingDocument(nil))
	assert.Equal(t, "", GroundingDocument([]domain.Product{}))
}

func TestAssembleConversationShape(t *testing.T) {
	products := []domain.Product{
		{Description: "Fresh apples, 1kg"},
		{Description: "Apple concentrate 500ml"},
	}

	turns := Assemble("apple juice ingredients", products)

	require.GreaterOrEqual(t, len(turns), 2)
	assert.Equal(t, port.RoleSystem, turns[0].Role)

	last := turns[len(turns)-1]
	assert.Equal(t, port.RoleUser, last.Role)
	assert.Contains(t, last.Content, "Document:\nFresh apples, 1kg Apple concentrate 500ml")
	assert.Contains(t, last.Content, "Q: apple juice ingredients")
	assert.True(t, strings.HasSuffix(last.Content, "A:"))
}

func TestAssembleFewShotTurnsAreStatic(t *testing.T) {
	a := Assemble("first query", nil)
	b := Assemble("second query", []domain.Product{{Description: "anything"}})

	// Everything except the final user turn is fixed per deployment.
	require.Equal(t, len(a), len(b))
	assert.Equal(t, a[:len(a)-1], b[:len(b)-1])
}

func TestAssembleEmptyResultsStillBuildsUserTurn(t *testing.T) {
	turns := Assemble("anything in stock?", nil)

	last := turns[len(turns)-1]
	assert.Equal(t, port.RoleUser, last.Role)
	assert.Contains(t, last.Content, "Document:\n\n")
	assert.Contains(t, last.Content, "Q: anything in stock?")
}
