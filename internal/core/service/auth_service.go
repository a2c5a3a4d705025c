package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/accounthub/user-service/internal/api/metrics"
	"github.com/accounthub/user-service/internal/core/domain"
	"github.com/accounthub/user-service/internal/core/ports"
	"github.com/accounthub/user-service/internal/pkg/password"
	"github.com/accounthub/user-service/internal/pkg/token"
)

// LoginTracker abstracts the last-login store (Redis). Recording is
// best-effort; failures never block a login.
type LoginTracker interface {
	RecordLogin(ctx context.Context, username string, at time.Time) error
	LastLogin(ctx context.Context, username string) (time.Time, error)
}

// AuthService validates credentials against the user repository and mints
// tokens. The hasher and issuer are standalone dependencies, so there is no
// reference back into the directory.
type AuthService struct {
	repo    ports.UserRepository
	hasher  *password.Hasher
	tokens  *token.Issuer
	tracker LoginTracker
	log     zerolog.Logger
}

// NewAuthService wires an AuthService. tracker may be nil when no last-login
// store is configured.
func NewAuthService(repo ports.UserRepository, hasher *password.Hasher, tokens *token.Issuer, tracker LoginTracker, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, tracker: tracker, log: log}
}

// ValidateCredentials looks the user up and compares the password. An unknown
// username propagates domain.ErrUserNotFound; a mismatch yields
// domain.ErrInvalidCredentials.
func (s *AuthService) ValidateCredentials(ctx context.Context, username, plaintext string) (*domain.Identity, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("unknown_user").Inc()
		}
		return nil, err
	}

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		s.log.Warn().Str("username", username).Msg("password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	identity := user.Identity()
	return &identity, nil
}

// Login is the merged credential-check-and-issue operation. It re-verifies
// the password itself, so it does not rely on a prior ValidateCredentials
// call by a guarding middleware.
func (s *AuthService) Login(ctx context.Context, username, plaintext string) (string, error) {
	identity, err := s.ValidateCredentials(ctx, username, plaintext)
	if err != nil {
		return "", err
	}
	return s.IssueToken(ctx, *identity)
}

// IssueToken mints a token for an already-verified identity and records the
// login timestamp. The identity must come from ValidateCredentials or the
// local-strategy middleware, never from unverified input.
func (s *AuthService) IssueToken(ctx context.Context, identity domain.Identity) (string, error) {
	signed, err := s.tokens.Issue(identity)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()

	if s.tracker != nil {
		if err := s.tracker.RecordLogin(ctx, identity.Username, time.Now().UTC()); err != nil {
			s.log.Warn().Err(err).Str("username", identity.Username).Msg("failed to record login")
		}
	}

	s.log.Info().Str("username", identity.Username).Strs("roles", identity.Roles).Msg("token issued")
	return signed, nil
}

// LastLogin reports the most recent recorded login for the username. ok is
// false when no record exists or the tracker is unavailable.
func (s *AuthService) LastLogin(ctx context.Context, username string) (time.Time, bool) {
	if s.tracker == nil {
		return time.Time{}, false
	}
	t, err := s.tracker.LastLogin(ctx, username)
	if err != nil || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

// HashPassword and ComparePassword are passthroughs to the hasher for
// callers that hold the auth service but not the hasher itself.
func (s *AuthService) HashPassword(plaintext string) (string, error) {
	return s.hasher.Hash(plaintext)
}

func (s *AuthService) ComparePassword(plaintext, hash string) bool {
	return s.hasher.Verify(plaintext, hash)
}
