package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestTracker(t *testing.T) *LoginTracker {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginTracker(client)
}

func TestLoginTracker_RoundTrip(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	at := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	if err := tracker.RecordLogin(ctx, "alice", at); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	got, err := tracker.LastLogin(ctx, "alice")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !got.Equal(at) {
		t.Fatalf("expected %v, got %v", at, got)
	}
}

func TestLoginTracker_Unknown(t *testing.T) {
	tracker := newTestTracker(t)

	got, err := tracker.LastLogin(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("expected zero time, got %v", got)
	}
}

func TestLoginTracker_Overwrite(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	first := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	if err := tracker.RecordLogin(ctx, "bob", first); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if err := tracker.RecordLogin(ctx, "bob", second); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	got, err := tracker.LastLogin(ctx, "bob")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !got.Equal(second) {
		t.Fatalf("expected %v, got %v", second, got)
	}
}
