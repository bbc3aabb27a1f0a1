package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quickcart/commerce-platform/internal/core/domain"
	"github.com/quickcart/commerce-platform/internal/core/ports"
)

// OrderService implements order use cases. Orders are accepted without a
// stock reservation against the inventory service; the two services are
// intentionally uncoupled.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	order := &domain.Order{
		UserID: input.UserID,
		Items:  input.Items,
		Status: domain.OrderPending,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().Str("order_id", created.ID).Str("user_id", created.UserID).Int("items", len(created.Items)).Msg("order created")
	return created, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
