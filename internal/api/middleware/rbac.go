package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole restricts an endpoint to identities holding exactly the given
// role. There is no hierarchy: admin does not satisfy a client-required check.
// Must run after Authenticate.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := CurrentIdentity(c)
			if !ok || identity.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
