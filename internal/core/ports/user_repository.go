package ports

import (
	"context"

	"github.com/quickcart/commerce-platform/internal/core/domain"
)

// UserRepository defines persistence for identity records. Create must fail
// with domain.ErrUserExists when the email is already taken; the unique index
// on email is the only guard against concurrent duplicate registrations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, fields UpdateUserFields) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// UpdateUserFields carries the mutable identity fields; nil means unchanged.
type UpdateUserFields struct {
	Name  *string
	Email *string
	Role  *string
}
