package ports

import (
	"context"

	"github.com/quickcart/commerce-platform/internal/core/domain"
)

// CreateProductInput carries all data needed to create a catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
}

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	SearchProducts(ctx context.Context, term string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id string, fields UpdateProductFields) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
