// Package password wraps bcrypt for storing and checking user passwords.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxBytes is bcrypt's input limit. It counts bytes, not characters.
const MaxBytes = 72

// ErrTooLong is returned by Hash for passwords over MaxBytes.
var ErrTooLong = errors.New("password exceeds 72 bytes")

// Hasher hashes and verifies passwords.
type Hasher struct {
	cost int
}

// NewHasher creates a bcrypt Hasher. Out-of-range costs fall back to
// bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted bcrypt hash of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > MaxBytes {
		return "", ErrTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
