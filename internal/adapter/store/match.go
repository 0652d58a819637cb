package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/arturoeanton/go-product-match-openai/internal/domain"
	"github.com/arturoeanton/go-product-match-openai/internal/port"
)

// MatchProducts calls the match_products stored function with the query
// vector, similarity threshold and result limit. Rows come back in the
// store's ranking order (descending similarity) and are returned as-is.
// Zero rows is a valid outcome, not an error.
func (s *PostgresStore) MatchProducts(ctx context.Context, vector []float32, threshold float64, limit int) ([]domain.Product, error) {
	query := `SELECT id, title, price, thumbnail_image, description, similarity
	          FROM match_products($1::vector(1536), $2, $3)`

	rows, err := s.db.QueryContext(ctx, query, vectorToString(vector), threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("match products: %v: %w", err, port.ErrStoreFailure)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Price, &p.ThumbnailImage, &p.Description, &p.Similarity,
		); err != nil {
			return nil, fmt.Errorf("scan product: %v: %w", err, port.ErrStoreFailure)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %v: %w", err, port.ErrStoreFailure)
	}
	return products, nil
}

// vectorToString converts a float32 slice to pgvector string format: [0.1,0.2,0.3].
func vectorToString(v []float32) string {
	parts := make([]string, len(v))
	for i, val := range v {
		parts[i] = fmt.Sprintf("%g", val)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
