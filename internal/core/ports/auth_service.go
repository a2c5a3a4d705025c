package ports

import (
	"context"
	"time"

	"github.com/accounthub/user-service/internal/core/domain"
)

// AuthService validates credentials and mints tokens.
type AuthService interface {
	// ValidateCredentials looks the user up and compares the password.
	// Returns domain.ErrUserNotFound for an unknown username and
	// domain.ErrInvalidCredentials on a password mismatch.
	ValidateCredentials(ctx context.Context, username, password string) (*domain.Identity, error)
	// Login is the merged check-and-issue operation: it re-verifies the
	// password itself, so it is safe to call outside the guarded HTTP path.
	Login(ctx context.Context, username, password string) (string, error)
	// IssueToken mints a token for an identity that has already been
	// verified (by ValidateCredentials or the local middleware).
	IssueToken(ctx context.Context, identity domain.Identity) (string, error)
	// LastLogin reports the most recent recorded login for the username.
	// ok is false when no record exists or the tracker is unavailable.
	LastLogin(ctx context.Context, username string) (t time.Time, ok bool)

	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}
