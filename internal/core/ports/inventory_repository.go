package ports

import (
	"context"

	"github.com/quickcart/commerce-platform/internal/core/domain"
)

// InventoryRepository defines persistence for stock records, keyed by product.
type InventoryRepository interface {
	Create(ctx context.Context, rec *domain.InventoryRecord) (*domain.InventoryRecord, error)
	FindByProductID(ctx context.Context, productID string) (*domain.InventoryRecord, error)
	FindAll(ctx context.Context) ([]domain.InventoryRecord, error)
	UpdateQuantity(ctx context.Context, productID string, quantity int) (*domain.InventoryRecord, error)
	DeleteByProductID(ctx context.Context, productID string) error
}
