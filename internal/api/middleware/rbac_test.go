package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quickcart/commerce-platform/internal/auth"
	"github.com/quickcart/commerce-platform/internal/core/domain"
)

func contextWithIdentity(e *echo.Echo, rec *httptest.ResponseRecorder, identity *auth.Identity) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(identityKey, *identity)
	}
	return c
}

func TestRequireRole_Matching(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := contextWithIdentity(e, rec, &auth.Identity{UserID: "user_1", Role: domain.RoleAdmin})

	called := false
	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := contextWithIdentity(e, rec, &auth.Identity{UserID: "user_2", Role: domain.RoleClient})

	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_NoHierarchy(t *testing.T) {
	// admin does not satisfy a client-required check either direction.
	e := echo.New()
	rec := httptest.NewRecorder()
	c := contextWithIdentity(e, rec, &auth.Identity{UserID: "user_3", Role: domain.RoleAdmin})

	handler := RequireRole(domain.RoleClient)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_MissingIdentity(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := contextWithIdentity(e, rec, nil)

	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
