package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accounthub/user-service/internal/core/ports"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LocalAuth is the local strategy, used only on the login route: it reads
// username/password from the request body, validates them against the auth
// service, and injects the resulting identity into the context so the handler
// can mint a token without touching the password again.
func LocalAuth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var req credentialsRequest
			if err := c.Bind(&req); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
			}
			if req.Username == "" || req.Password == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
			}

			// ErrUserNotFound and ErrInvalidCredentials map to 404/401 at
			// the error boundary; store faults stay unhandled 500s.
			identity, err := auth.ValidateCredentials(c.Request().Context(), req.Username, req.Password)
			if err != nil {
				return err
			}

			c.Set(IdentityKey, *identity)
			return next(c)
		}
	}
}
