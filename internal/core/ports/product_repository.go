package ports

import (
	"context"

	"github.com/quickcart/commerce-platform/internal/core/domain"
)

// ProductRepository defines persistence for the product catalog.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// Search returns all products when the term is empty, otherwise products
	// whose name or description matches the term case-insensitively.
	Search(ctx context.Context, term string) ([]domain.Product, error)
	Update(ctx context.Context, id string, fields UpdateProductFields) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// UpdateProductFields carries the mutable catalog fields; nil means unchanged.
type UpdateProductFields struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Stock       *int
}
