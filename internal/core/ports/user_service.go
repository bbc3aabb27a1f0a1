package ports

import (
	"context"

	"github.com/quickcart/commerce-platform/internal/core/domain"
)

// UserService covers admin-facing user management.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, fields UpdateUserFields) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
