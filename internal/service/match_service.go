package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/arturoeanton/go-product-match-openai/internal/domain"
	"github.com/arturoeanton/go-product-match-openai/internal/port"
	"github.com/arturoeanton/go-product-match-openai/internal/prompt"
)

// MatchService runs the retrieval-augmented answer pipeline: embed the query,
// search the catalog, assemble the prompt, generate the answer.
type MatchService struct {
	embedder  port.Embedder
	searcher  port.ProductSearcher
	generator port.Generator

	threshold float64
	limit     int
	aiTimeout time.Duration
}

// NewMatchService creates a match service with fixed search parameters.
func NewMatchService(embedder port.Embedder, searcher port.ProductSearcher, generator port.Generator, threshold float64, limit int, aiTimeout time.Duration) *MatchService {
	return &MatchService{
		embedder:  embedder,
		searcher:  searcher,
		generator: generator,
		threshold: threshold,
		limit:     limit,
		aiTimeout: aiTimeout,
	}
}

// Match answers a shopper query grounded in similar catalog products.
// Each external call is attempted exactly once; any failure fails the whole
// request, never a partial answer. The products that ground the prompt are
// exactly the products disclosed in the result, in store ranking order.
func (s *MatchService) Match(ctx context.Context, query string) (domain.MatchResult, error) {
	if strings.TrimSpace(query) == "" {
		return domain.MatchResult{}, port.ErrEmptyQuery
	}

	slog.Info("match query", "query", query)

	embedCtx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	vector, err := s.embedder.Embed(embedCtx, query)
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("embed query: %w", err)
	}

	products, err := s.searcher.MatchProducts(ctx, vector, s.threshold, s.limit)
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("search products: %w", err)
	}

	turns := prompt.Assemble(query, products)

	genCtx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	message, err := s.generator.Generate(genCtx, turns)
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("generate answer: %w", err)
	}

	slog.Info("match answered", "products", len(products))

	return domain.MatchResult{Message: message, Products: products}, nil
}
