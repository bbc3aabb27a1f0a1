package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/quickcart/commerce-platform/internal/core/domain"
	"github.com/quickcart/commerce-platform/internal/core/ports"
)

type stubOrderRepo struct {
	orders map[string]*domain.Order
	nextID int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	copy := *o
	r.nextID++
	copy.ID = fmt.Sprintf("order_%d", r.nextID)
	r.orders[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	if o, ok := r.orders[id]; ok {
		copy := *o
		return &copy, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) FindAll(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.Status = status
	copy := *o
	return &copy, nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func TestOrderService_CreateOrder(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), zerolog.Nop())

	order, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		UserID: "user_1",
		Items:  []domain.OrderItem{{ProductID: "prod_1", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	if order.UserID != "user_1" {
		t.Fatalf("unexpected user id: %s", order.UserID)
	}
	if order.Status != domain.OrderPending {
		t.Fatalf("expected pending status, got %s", order.Status)
	}
}

func TestOrderService_CreateOrder_EmptyItems(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), zerolog.Nop())

	if _, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{UserID: "user_1"}); err == nil {
		t.Fatalf("expected error for empty order")
	}
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, zerolog.Nop())

	order, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		UserID: "user_2",
		Items:  []domain.OrderItem{{ProductID: "prod_9", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}

	updated, err := svc.UpdateOrderStatus(context.Background(), order.ID, domain.OrderShipped)
	if err != nil {
		t.Fatalf("UpdateOrderStatus returned error: %v", err)
	}
	if updated.Status != domain.OrderShipped {
		t.Fatalf("expected shipped, got %s", updated.Status)
	}
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), zerolog.Nop())

	if _, err := svc.GetOrder(context.Background(), "missing"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
