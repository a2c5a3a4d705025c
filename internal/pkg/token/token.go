// Package token issues and verifies the HS256-signed JWTs that carry a
// caller's identity between requests.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/accounthub/user-service/internal/core/domain"
)

// Claims is the signed payload: subject id (registered "sub"), username and
// roles, plus the standard expiry/issued-at timestamps.
type Claims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// Identity rebuilds the request identity from verified claims.
func (c *Claims) Identity() domain.Identity {
	return domain.Identity{
		SubjectID: c.Subject,
		Username:  c.Username,
		Roles:     c.Roles,
	}
}

// Issuer signs and verifies tokens with a process-wide secret and lifetime,
// both loaded once at startup.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer returns an Issuer. A non-positive ttl defaults to 24h.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token for the identity, expiring after the configured TTL.
func (i *Issuer) Issue(identity domain.Identity) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Username: identity.Username,
		Roles:    identity.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.SubjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks the signature and expiry before any claim is trusted.
// Every failure mode collapses to domain.ErrInvalidToken.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
