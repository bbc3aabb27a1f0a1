package ports

import (
	"context"

	"github.com/quickcart/commerce-platform/internal/core/domain"
)

// AuthService covers registration and token issuance.
type AuthService interface {
	// Register creates a client-role identity. The role is never taken from
	// the caller; elevation happens only through the admin user update.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login returns a signed token plus the user's role and name. Unknown
	// email and wrong password both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
