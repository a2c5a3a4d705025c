package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/accounthub/user-service/internal/core/domain"
	"github.com/accounthub/user-service/internal/pkg/token"
)

// IdentityKey is the echo context key under which both auth strategies store
// the verified domain.Identity.
const IdentityKey = "identity"

// Identity extracts the identity injected by an auth middleware. ok is false
// when no auth middleware ran on this route.
func Identity(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(IdentityKey).(domain.Identity)
	return identity, ok
}

// TokenAuth is the token strategy: it verifies the bearer token from the
// Authorization header and injects the decoded identity into the context.
// The signature check happens before any claim is trusted.
func TokenAuth(issuer *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(IdentityKey, claims.Identity())
			return next(c)
		}
	}
}
