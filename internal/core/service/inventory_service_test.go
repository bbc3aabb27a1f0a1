package service

import (
	"context"
	"errors"
	"testing"

	"github.com/quickcart/commerce-platform/internal/core/domain"
)

type stubInventoryRepo struct {
	records map[string]*domain.InventoryRecord
}

func newStubInventoryRepo() *stubInventoryRepo {
	return &stubInventoryRepo{records: make(map[string]*domain.InventoryRecord)}
}

func (r *stubInventoryRepo) Create(_ context.Context, rec *domain.InventoryRecord) (*domain.InventoryRecord, error) {
	copy := *rec
	copy.ID = "inv_" + rec.ProductID
	r.records[rec.ProductID] = &copy
	out := copy
	return &out, nil
}

func (r *stubInventoryRepo) FindByProductID(_ context.Context, productID string) (*domain.InventoryRecord, error) {
	if rec, ok := r.records[productID]; ok {
		copy := *rec
		return &copy, nil
	}
	return nil, domain.ErrInventoryNotFound
}

func (r *stubInventoryRepo) FindAll(_ context.Context) ([]domain.InventoryRecord, error) {
	out := make([]domain.InventoryRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, *rec)
	}
	return out, nil
}

func (r *stubInventoryRepo) UpdateQuantity(_ context.Context, productID string, quantity int) (*domain.InventoryRecord, error) {
	rec, ok := r.records[productID]
	if !ok {
		return nil, domain.ErrInventoryNotFound
	}
	rec.Quantity = quantity
	copy := *rec
	return &copy, nil
}

func (r *stubInventoryRepo) DeleteByProductID(_ context.Context, productID string) error {
	if _, ok := r.records[productID]; !ok {
		return domain.ErrInventoryNotFound
	}
	delete(r.records, productID)
	return nil
}

func TestInventoryService_SetQuantity(t *testing.T) {
	repo := newStubInventoryRepo()
	svc := NewInventoryService(repo)

	if _, err := svc.CreateRecord(context.Background(), "prod_1", 10); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.SetQuantity(context.Background(), "prod_1", 4)
	if err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if updated.Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", updated.Quantity)
	}
}

func TestInventoryService_SetQuantity_Missing(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo())

	if _, err := svc.SetQuantity(context.Background(), "ghost", 1); !errors.Is(err, domain.ErrInventoryNotFound) {
		t.Fatalf("expected ErrInventoryNotFound, got %v", err)
	}
}

func TestInventoryService_GetByProductID_Missing(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo())

	if _, err := svc.GetByProductID(context.Background(), "ghost"); !errors.Is(err, domain.ErrInventoryNotFound) {
		t.Fatalf("expected ErrInventoryNotFound, got %v", err)
	}
}
