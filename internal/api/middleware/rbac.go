package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/accounthub/user-service/internal/core/domain"
)

// RBAC enforces a per-route list of permitted roles, checked against the
// identity injected by TokenAuth. An empty list allows any authenticated
// caller; a known identity without a matching role gets 403, distinct from
// the 401 an unauthenticated request receives.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(allowedRoles) == 0 {
				return next(c)
			}

			identity, ok := Identity(c)
			if !ok {
				return domain.ErrInvalidToken
			}
			if !identity.HasAnyRole(allowedRoles...) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
