package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cretpass")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "s3cretpass" {
		t.Fatalf("hash equals plaintext")
	}

	if !h.Verify("s3cretpass", hash) {
		t.Fatalf("expected match")
	}
	if h.Verify("wrongpass", hash) {
		t.Fatalf("expected mismatch")
	}
}

func TestHasher_MalformedHashFailsClosed(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must not verify")
	}
	if h.Verify("anything", "") {
		t.Fatalf("empty hash must not verify")
	}
}

func TestNewHasher_CostFallback(t *testing.T) {
	h := NewHasher(99)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}

	h = NewHasher(bcrypt.MinCost)
	if h.cost != bcrypt.MinCost {
		t.Fatalf("expected min cost, got %d", h.cost)
	}
}
