package ports

import (
	"context"

	"github.com/quickcart/commerce-platform/internal/core/domain"
)

// CreateOrderInput carries a new order. UserID comes from the verified token
// subject, never from the request body.
type CreateOrderInput struct {
	UserID string
	Items  []domain.OrderItem
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}
