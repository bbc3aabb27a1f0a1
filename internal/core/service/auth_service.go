package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/quickcart/commerce-platform/internal/auth"
	"github.com/quickcart/commerce-platform/internal/core/domain"
	"github.com/quickcart/commerce-platform/internal/core/ports"
)

// AuthService implements registration and login for the user service.
type AuthService struct {
	repo   ports.UserRepository
	issuer *auth.Issuer
}

func NewAuthService(repo ports.UserRepository, issuer *auth.Issuer) *AuthService {
	return &AuthService{repo: repo, issuer: issuer}
}

// Register creates a new identity. The role is always client; administrative
// elevation goes through UserService.UpdateUser.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login authenticates by email and password and mints a signed token.
// An unknown email and a wrong password produce the same error so callers
// cannot probe which addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Name, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
