package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickcart/commerce-platform/internal/api/middleware"
	"github.com/quickcart/commerce-platform/internal/auth"
)

// ctxIdentity extracts the identity injected by the Authenticate middleware.
// Its presence proves the middleware ran; a missing identity on a protected
// route is a wiring bug, reported as 401 rather than a panic downstream.
func ctxIdentity(c echo.Context) (auth.Identity, error) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
