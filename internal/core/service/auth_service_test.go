package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/quickcart/commerce-platform/internal/auth"
	"github.com/quickcart/commerce-platform/internal/core/domain"
	"github.com/quickcart/commerce-platform/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, fields ports.UpdateUserFields) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if fields.Name != nil {
		u.Name = *fields.Name
	}
	if fields.Email != nil {
		u.Email = *fields.Email
	}
	if fields.Role != nil {
		u.Role = *fields.Role
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newTestAuthService(repo ports.UserRepository) *AuthService {
	return NewAuthService(repo, auth.NewIssuer("secret", time.Hour))
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_AlwaysClientRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "Mallory", "mallory@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleClient {
		t.Fatalf("expected client role, got %s", user.Role)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	first, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass")
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Bobby", "bob@example.com", "pass2"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// First record must be untouched by the failed attempt.
	stored, err := repo.FindByID(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.Name != "Bob" {
		t.Fatalf("first record modified: %+v", stored)
	}
}

func TestAuthService_Login_TokenRoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	registered, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Name != "Carol" || user.Role != domain.RoleClient {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := auth.NewVerifier("secret").Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Subject != registered.ID {
		t.Fatalf("expected subject %s, got %s", registered.ID, claims.Subject)
	}
	if claims.Name != "Carol" || claims.Role != domain.RoleClient {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass")

	// Wrong password and unknown email must be indistinguishable.
	_, _, badPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, noUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(badPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", badPass)
	}
	if !errors.Is(noUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
}

func TestAuthService_Login_RoleSnapshot(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	users := NewUserService(repo)

	registered, err := svc.Register(context.Background(), "Erin", "erin@example.com", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	before, _, err := svc.Login(context.Background(), "erin@example.com", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	admin := domain.RoleAdmin
	if _, err := users.UpdateUser(context.Background(), registered.ID, ports.UpdateUserFields{Role: &admin}); err != nil {
		t.Fatalf("role update failed: %v", err)
	}

	after, _, err := svc.Login(context.Background(), "erin@example.com", "pass")
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}

	verifier := auth.NewVerifier("secret")
	beforeClaims, err := verifier.Verify(before)
	if err != nil {
		t.Fatalf("old token invalid: %v", err)
	}
	afterClaims, err := verifier.Verify(after)
	if err != nil {
		t.Fatalf("new token invalid: %v", err)
	}

	// The old token keeps the role it was issued with.
	if beforeClaims.Role != domain.RoleClient {
		t.Fatalf("expected old token role client, got %s", beforeClaims.Role)
	}
	if afterClaims.Role != domain.RoleAdmin {
		t.Fatalf("expected new token role admin, got %s", afterClaims.Role)
	}
}
