package port

import "context"

// Conversation roles understood by the generation backend.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single (role, content) pair in the conversation sent to the
// generation backend.
type Turn struct {
	Role    string
	Content string
}

// Embedder converts text into a fixed-dimension embedding vector.
// Implementations can target OpenAI or any compatible API.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Generator produces a natural-language answer from an ordered conversation.
type Generator interface {
	Generate(ctx context.Context, turns []Turn) (string, error)
}
