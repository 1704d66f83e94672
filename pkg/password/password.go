// Package password provides one-way salted password hashing built on bcrypt.
//
// Hash embeds a fresh salt on every call, so hashing the same plaintext
// twice yields different outputs that both verify. Verify never reports why
// a comparison failed; callers treat any mismatch as bad credentials.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies passwords with a configurable bcrypt cost.
type Hasher struct {
	cost int
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithCost sets the bcrypt cost. Values outside bcrypt's supported range
// fall back to the default cost at hash time.
func WithCost(cost int) Option {
	return func(h *Hasher) {
		h.cost = cost
	}
}

// New creates a Hasher with the default bcrypt cost unless overridden.
func New(opts ...Option) *Hasher {
	h := &Hasher{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash returns a salted one-way hash of the plaintext.
func (h *Hasher) Hash(plaintext string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return nil, fmt.Errorf("password: hash: %w", err)
	}
	return hash, nil
}

// Verify reports whether the plaintext matches the hash.
func (h *Hasher) Verify(plaintext string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(plaintext)) == nil
}
