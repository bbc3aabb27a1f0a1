package ports

import (
	"context"

	"github.com/quickcart/commerce-platform/internal/core/domain"
)

// InventoryService defines use-case operations for stock records.
type InventoryService interface {
	CreateRecord(ctx context.Context, productID string, quantity int) (*domain.InventoryRecord, error)
	GetByProductID(ctx context.Context, productID string) (*domain.InventoryRecord, error)
	ListRecords(ctx context.Context) ([]domain.InventoryRecord, error)
	SetQuantity(ctx context.Context, productID string, quantity int) (*domain.InventoryRecord, error)
	DeleteByProductID(ctx context.Context, productID string) error
}
