package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quickcart/commerce-platform/internal/core/domain"
)

type stubInventoryService struct {
	getFn func(ctx context.Context, productID string) (*domain.InventoryRecord, error)
}

func (s *stubInventoryService) CreateRecord(context.Context, string, int) (*domain.InventoryRecord, error) {
	return nil, nil
}

func (s *stubInventoryService) GetByProductID(ctx context.Context, productID string) (*domain.InventoryRecord, error) {
	return s.getFn(ctx, productID)
}

func (s *stubInventoryService) ListRecords(context.Context) ([]domain.InventoryRecord, error) {
	return nil, nil
}

func (s *stubInventoryService) SetQuantity(context.Context, string, int) (*domain.InventoryRecord, error) {
	return nil, domain.ErrInventoryNotFound
}

func (s *stubInventoryService) DeleteByProductID(context.Context, string) error {
	return domain.ErrInventoryNotFound
}

func TestInventoryHandler_GetByProduct_MissingReportsZero(t *testing.T) {
	e := newTestEcho()
	stub := &stubInventoryService{
		getFn: func(ctx context.Context, productID string) (*domain.InventoryRecord, error) {
			return nil, domain.ErrInventoryNotFound
		},
	}
	handler := NewInventoryHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/inventory/prod_9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("productId")
	c.SetParamValues("prod_9")

	if err := handler.GetByProduct(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["product_id"] != "prod_9" || resp["quantity"] != float64(0) {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestInventoryHandler_GetByProduct_Found(t *testing.T) {
	e := newTestEcho()
	stub := &stubInventoryService{
		getFn: func(ctx context.Context, productID string) (*domain.InventoryRecord, error) {
			return &domain.InventoryRecord{ID: "inv_1", ProductID: productID, Quantity: 7}, nil
		},
	}
	handler := NewInventoryHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/inventory/prod_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("productId")
	c.SetParamValues("prod_1")

	if err := handler.GetByProduct(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp domain.InventoryRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", resp.Quantity)
	}
}
