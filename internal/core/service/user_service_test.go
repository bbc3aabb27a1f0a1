package service

import (
	"context"
	"errors"
	"testing"

	"github.com/quickcart/commerce-platform/internal/core/domain"
	"github.com/quickcart/commerce-platform/internal/core/ports"
)

func TestUserService_UpdateUser_RejectsUnknownRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	bad := "superuser"
	if _, err := svc.UpdateUser(context.Background(), "user_1", ports.UpdateUserFields{Role: &bad}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_UpdateUser_Elevation(t *testing.T) {
	repo := newStubUserRepo()
	auth := newTestAuthService(repo)
	svc := NewUserService(repo)

	registered, err := auth.Register(context.Background(), "Frank", "frank@example.com", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	admin := domain.RoleAdmin
	updated, err := svc.UpdateUser(context.Background(), registered.ID, ports.UpdateUserFields{Role: &admin})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", updated.Role)
	}
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	if _, err := svc.GetUser(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := newStubUserRepo()
	auth := newTestAuthService(repo)
	svc := NewUserService(repo)

	registered, err := auth.Register(context.Background(), "Grace", "grace@example.com", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.DeleteUser(context.Background(), registered.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetUser(context.Background(), registered.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}
