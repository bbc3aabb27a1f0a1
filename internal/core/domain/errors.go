package domain

import "errors"

// Identity and authorization failures. ErrInvalidCredentials covers both an
// unknown email and a wrong password: login must not reveal which one failed.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrTokenInvalid       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access forbidden")
)

var (
	ErrInvalidRole       = errors.New("invalid role")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInventoryNotFound = errors.New("inventory record not found")
)
