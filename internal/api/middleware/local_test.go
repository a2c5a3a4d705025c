package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/accounthub/user-service/internal/core/domain"
)

type stubAuthService struct {
	validateFn func(ctx context.Context, username, password string) (*domain.Identity, error)
}

func (s *stubAuthService) ValidateCredentials(ctx context.Context, username, password string) (*domain.Identity, error) {
	return s.validateFn(ctx, username, password)
}

func (s *stubAuthService) Login(context.Context, string, string) (string, error) {
	return "", nil
}

func (s *stubAuthService) IssueToken(context.Context, domain.Identity) (string, error) {
	return "", nil
}

func (s *stubAuthService) LastLogin(context.Context, string) (time.Time, bool) {
	return time.Time{}, false
}

func (s *stubAuthService) HashPassword(string) (string, error) { return "", nil }

func (s *stubAuthService) ComparePassword(string, string) bool { return false }

func localAuthContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestLocalAuth_ValidCredentials(t *testing.T) {
	stub := &stubAuthService{
		validateFn: func(_ context.Context, username, password string) (*domain.Identity, error) {
			if username != "alice" || password != "s3cretpass" {
				t.Fatalf("unexpected credentials: %s %s", username, password)
			}
			return &domain.Identity{SubjectID: "id-1", Username: "alice", Roles: []string{domain.RoleUser}}, nil
		},
	}

	c := localAuthContext(t, `{"username":"alice","password":"s3cretpass"}`)

	called := false
	handler := LocalAuth(stub)(func(c echo.Context) error {
		called = true
		identity, ok := Identity(c)
		if !ok || identity.Username != "alice" {
			t.Fatalf("identity not injected: %+v", identity)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestLocalAuth_WrongPassword(t *testing.T) {
	stub := &stubAuthService{
		validateFn: func(context.Context, string, string) (*domain.Identity, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}

	c := localAuthContext(t, `{"username":"alice","password":"wrong"}`)

	handler := LocalAuth(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLocalAuth_UnknownUserPropagates(t *testing.T) {
	stub := &stubAuthService{
		validateFn: func(context.Context, string, string) (*domain.Identity, error) {
			return nil, domain.ErrUserNotFound
		},
	}

	c := localAuthContext(t, `{"username":"ghost","password":"whatever"}`)

	handler := LocalAuth(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLocalAuth_MissingCredentials(t *testing.T) {
	stub := &stubAuthService{
		validateFn: func(context.Context, string, string) (*domain.Identity, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	c := localAuthContext(t, `{"username":"alice"}`)

	handler := LocalAuth(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
