package service

import (
	"context"

	"github.com/quickcart/commerce-platform/internal/core/domain"
	"github.com/quickcart/commerce-platform/internal/core/ports"
)

// UserService implements admin-facing user management.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateUser applies the given fields. Role updates are validated here; this
// is the only path that can elevate an identity to admin.
func (s *UserService) UpdateUser(ctx context.Context, id string, fields ports.UpdateUserFields) (*domain.User, error) {
	if fields.Role != nil && !domain.ValidRole(*fields.Role) {
		return nil, domain.ErrInvalidRole
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
