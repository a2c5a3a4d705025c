package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accounthub/user-service/internal/api/middleware"
	"github.com/accounthub/user-service/internal/core/domain"
)

// ctxIdentity extracts the identity injected by an auth middleware and
// fast-fails before any service call. A missing identity means the route was
// wired without its auth middleware; answering 401 keeps the surface closed.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.Identity(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
