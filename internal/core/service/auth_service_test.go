package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/accounthub/user-service/internal/core/domain"
	"github.com/accounthub/user-service/internal/core/ports"
	"github.com/accounthub/user-service/internal/pkg/password"
	"github.com/accounthub/user-service/internal/pkg/token"
)

type memLoginTracker struct {
	mu     sync.Mutex
	logins map[string]time.Time
}

func newMemLoginTracker() *memLoginTracker {
	return &memLoginTracker{logins: make(map[string]time.Time)}
}

func (t *memLoginTracker) RecordLogin(_ context.Context, username string, at time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logins[username] = at
	return nil
}

func (t *memLoginTracker) LastLogin(_ context.Context, username string) (time.Time, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.logins[username], nil
}

func newTestAuthService(repo ports.UserRepository, tracker LoginTracker) *AuthService {
	hasher := password.NewHasher(bcrypt.MinCost)
	issuer := token.NewIssuer("secret", time.Hour)
	return NewAuthService(repo, hasher, issuer, tracker, zerolog.Nop())
}

func seedUser(t *testing.T, repo *stubUserRepo, username, plaintext string, roles ...string) *domain.User {
	t.Helper()
	hash, err := password.NewHasher(bcrypt.MinCost).Hash(plaintext)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	user, err := repo.Insert(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: hash,
		Roles:        roles,
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return user
}

func TestAuthService_ValidateCredentials_Success(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "alice", "correcthorse", domain.RoleAdmin)
	svc := newTestAuthService(repo, nil)

	identity, err := svc.ValidateCredentials(context.Background(), "alice", "correcthorse")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if identity.SubjectID != seeded.ID || identity.Username != "alice" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if !identity.HasRole(domain.RoleAdmin) {
		t.Fatalf("expected admin role, got %v", identity.Roles)
	}
}

func TestAuthService_ValidateCredentials_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "bob", "correcthorse", domain.RoleUser)
	svc := newTestAuthService(repo, nil)

	if _, err := svc.ValidateCredentials(context.Background(), "bob", "wrongpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ValidateCredentials_UnknownUser(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	if _, err := svc.ValidateCredentials(context.Background(), "ghost", "whatever"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_IssuesVerifiableToken(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "carol", "s3cretpass", domain.RoleAdmin)
	svc := newTestAuthService(repo, nil)

	signed, err := svc.Login(context.Background(), "carol", "s3cretpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token")
	}

	claims, err := token.NewIssuer("secret", time.Hour).Verify(signed)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Username != "carol" || claims.Subject != seeded.ID {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_VerifiesPasswordItself(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "dave", "rightpass1", domain.RoleUser)
	svc := newTestAuthService(repo, nil)

	if _, err := svc.Login(context.Background(), "dave", "wrongpass1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_RecordsLastLogin(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "erin", "s3cretpass", domain.RoleUser)
	tracker := newMemLoginTracker()
	svc := newTestAuthService(repo, tracker)

	if _, ok := svc.LastLogin(context.Background(), "erin"); ok {
		t.Fatalf("expected no last login before first login")
	}

	if _, err := svc.Login(context.Background(), "erin", "s3cretpass"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	at, ok := svc.LastLogin(context.Background(), "erin")
	if !ok || at.IsZero() {
		t.Fatalf("expected recorded last login")
	}
}

func TestAuthService_PasswordPassthroughs(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	hash, err := svc.HashPassword("plaintext1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if !svc.ComparePassword("plaintext1", hash) {
		t.Fatalf("expected match")
	}
	if svc.ComparePassword("different1", hash) {
		t.Fatalf("expected mismatch")
	}
}
