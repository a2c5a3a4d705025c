package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const loginTTL = 30 * 24 * time.Hour

// LoginTracker records the last successful login per username in Redis.
// Key format: lastlogin:<username>, value RFC3339, expiring after loginTTL.
type LoginTracker struct {
	client *redis.Client
}

// NewLoginTracker creates a LoginTracker wrapping the given Redis client.
func NewLoginTracker(client *redis.Client) *LoginTracker {
	return &LoginTracker{client: client}
}

// RecordLogin stores at as the most recent login for username.
func (t *LoginTracker) RecordLogin(ctx context.Context, username string, at time.Time) error {
	return t.client.Set(ctx, t.key(username), at.UTC().Format(time.RFC3339), loginTTL).Err()
}

// LastLogin returns the most recent recorded login. A zero time with a nil
// error means no login has been recorded within the retention window.
func (t *LoginTracker) LastLogin(ctx context.Context, username string) (time.Time, error) {
	val, err := t.client.Get(ctx, t.key(username)).Result()
	if err == redis.Nil {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("last login lookup: %w", err)
	}

	at, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("last login parse: %w", err)
	}
	return at, nil
}

func (t *LoginTracker) key(username string) string {
	return "lastlogin:" + username
}
