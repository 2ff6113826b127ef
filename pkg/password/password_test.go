package password

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("Secreta123")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "Secreta123" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("unexpected hash format: %s", hash)
	}
	if !h.Verify("Secreta123", hash) {
		t.Error("correct password should verify")
	}
	if h.Verify("secreta123", hash) {
		t.Error("wrong password must not verify")
	}
}

func TestHash_ByteLimit(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	// 36 two-byte runes sit exactly on the limit.
	if _, err := h.Hash(strings.Repeat("ñ", 36)); err != nil {
		t.Errorf("72 bytes should hash: %v", err)
	}
	if _, err := h.Hash(strings.Repeat("ñ", 40)); !errors.Is(err, ErrTooLong) {
		t.Errorf("80 bytes: expected ErrTooLong, got %v", err)
	}
}

func TestHash_Salted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, _ := h.Hash("same-password")
	b, _ := h.Hash("same-password")
	if a == b {
		t.Error("two hashes of the same password should differ")
	}
	if len(a) != len(b) {
		t.Errorf("hash length should be fixed, got %d and %d", len(a), len(b))
	}
}

func TestVerify_GarbageHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Error("garbage hash must not verify")
	}
}

func TestNewHasher_CostFallback(t *testing.T) {
	if got := NewHasher(0).cost; got != bcrypt.DefaultCost {
		t.Errorf("expected default cost, got %d", got)
	}
	if got := NewHasher(99).cost; got != bcrypt.DefaultCost {
		t.Errorf("expected default cost, got %d", got)
	}
	if got := NewHasher(12).cost; got != 12 {
		t.Errorf("expected cost 12, got %d", got)
	}
}
