package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/accounthub/user-service/internal/core/domain"
)

func rbacContext(identity *domain.Identity) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if identity != nil {
		c.Set(IdentityKey, *identity)
	}
	return c
}

func TestRBAC_AllowsMatchingRole(t *testing.T) {
	c := rbacContext(&domain.Identity{Username: "alice", Roles: []string{domain.RoleAdmin}})

	called := false
	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
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

func TestRBAC_AllowsAnyOfSeveral(t *testing.T) {
	c := rbacContext(&domain.Identity{Username: "bob", Roles: []string{domain.RoleUser}})

	called := false
	handler := RBAC(domain.RoleAdmin, domain.RoleUser)(func(c echo.Context) error {
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

func TestRBAC_ForbidsInsufficientRole(t *testing.T) {
	c := rbacContext(&domain.Identity{Username: "carol", Roles: []string{domain.RoleUser}})

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRBAC_EmptyListAllowsAll(t *testing.T) {
	c := rbacContext(&domain.Identity{Username: "dave", Roles: []string{"auditor"}})

	called := false
	handler := RBAC()(func(c echo.Context) error {
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

func TestRBAC_MissingIdentity(t *testing.T) {
	c := rbacContext(nil)

	handler := RBAC(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
