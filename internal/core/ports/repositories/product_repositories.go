package repositories

import (
	"context"

	"github.com/bizpulse/bizpulse_backend/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	// SaveProduct prepends a new product to the collection.
	SaveProduct(ctx context.Context, product domain.Product) error

	// ListProducts returns all products, newest first.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// DeleteProducts removes every product whose id is in ids.
	// Unknown ids are ignored.
	DeleteProducts(ctx context.Context, ids []string) error
}
