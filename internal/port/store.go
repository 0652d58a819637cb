package port

import (
	"context"

	"github.com/arturoeanton/go-product-match-openai/internal/domain"
)

// ProductSearcher performs a similarity search against the product catalog.
// Results come back in the store's own ranking order (descending similarity)
// and only include products whose similarity meets the threshold.
type ProductSearcher interface {
	MatchProducts(ctx context.Context, vector []float32, threshold float64, limit int) ([]domain.Product, error)
}
