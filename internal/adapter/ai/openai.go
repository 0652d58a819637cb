package ai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/arturoeanton/go-product-match-openai/internal/port"
)

// OpenAIConfig holds the settings for the OpenAI-backed provider.
type OpenAIConfig struct {
	APIKey     string
	EmbedModel string // e.g. text-embedding-3-small
	ChatModel  string // e.g. gpt-4o-mini
	Dimensions int    // embedding dimensionality, e.g. 1536
}

// OpenAIProvider implements port.Embedder and port.Generator using the
// OpenAI API.
type OpenAIProvider struct {
	client     *openai.Client
	embedModel openai.EmbeddingModel
	chatModel  string
	dimensions int
}

// NewOpenAIProvider creates a new OpenAI-backed provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	return &OpenAIProvider{
		client:     openai.NewClient(cfg.APIKey),
		embedModel: openai.EmbeddingModel(cfg.EmbedModel),
		chatModel:  cfg.ChatModel,
		dimensions: cfg.Dimensions,
	}
}

// Embed generates an embedding vector for the given text.
func (p *OpenAIProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	req := openai.EmbeddingRequest{
		Input:          []string{text},
		Model:          p.embedModel,
		EncodingFormat: openai.EmbeddingEncodingFormatFloat,
	}
	if p.dimensions > 0 {
		req.Dimensions = p.dimensions
	}

	resp, err := p.client.CreateEmbeddings(ctx, req)
	if err != nil {
		return nil, wrapAPIError("embed", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embed: empty response: %w", port.ErrProviderFailure)
	}
	return resp.Data[0].Embedding, nil
}

// Generate sends the conversation turns as a chat completion and returns the
// generated text. Generation is deterministic-leaning (zero temperature) with
// a generous output ceiling so answers are stable and never truncated.
func (p *OpenAIProvider) Generate(ctx context.Context, turns []port.Turn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, len(turns))
	for i, t := range turns {
		messages[i] = openai.ChatCompletionMessage{Role: t.Role, Content: t.Content}
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.chatModel,
		Messages:    messages,
		Temperature: 0,
		TopP:        1.0,
		MaxTokens:   8000,
	})
	if err != nil {
		return "", wrapAPIError("generate", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("generate: empty response: %w", port.ErrProviderFailure)
	}
	return resp.Choices[0].Message.Content, nil
}

// wrapAPIError extracts a readable message from the API error and tags it
// with port.ErrProviderFailure for boundary mapping.
func wrapAPIError(op string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: openai API error %d: %s: %w",
			op, apiErr.HTTPStatusCode, apiErr.Message, port.ErrProviderFailure)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("%s: openai request error %d: %s: %w",
			op, reqErr.HTTPStatusCode, string(reqErr.Body), port.ErrProviderFailure)
	}

	return fmt.Errorf("%s: %v: %w", op, err, port.ErrProviderFailure)
}
