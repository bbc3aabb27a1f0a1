package service

import (
	"context"

	"github.com/quickcart/commerce-platform/internal/core/domain"
	"github.com/quickcart/commerce-platform/internal/core/ports"
)

// InventoryService implements stock record use cases.
type InventoryService struct {
	repo ports.InventoryRepository
}

func NewInventoryService(repo ports.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

func (s *InventoryService) CreateRecord(ctx context.Context, productID string, quantity int) (*domain.InventoryRecord, error) {
	return s.repo.Create(ctx, &domain.InventoryRecord{ProductID: productID, Quantity: quantity})
}

func (s *InventoryService) GetByProductID(ctx context.Context, productID string) (*domain.InventoryRecord, error) {
	return s.repo.FindByProductID(ctx, productID)
}

func (s *InventoryService) ListRecords(ctx context.Context) ([]domain.InventoryRecord, error) {
	return s.repo.FindAll(ctx)
}

func (s *InventoryService) SetQuantity(ctx context.Context, productID string, quantity int) (*domain.InventoryRecord, error) {
	return s.repo.UpdateQuantity(ctx, productID, quantity)
}

func (s *InventoryService) DeleteByProductID(ctx context.Context, productID string) error {
	return s.repo.DeleteByProductID(ctx, productID)
}
