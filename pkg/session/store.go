package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Store defines the interface for session persistence.
type Store interface {
	// Create mints a fresh unguessable token owned by userID and records
	// the creation time.
	Create(ctx context.Context, userID uuid.UUID) (string, error)

	// Destroy removes every session owned by userID. No-op when none exist.
	Destroy(ctx context.Context, userID uuid.UUID) error

	// UserID resolves a token to its owning user, applying ttl as a
	// read-only expiration check: ttl <= 0 disables expiry, otherwise a
	// record older than ttl yields ErrSessionExpired. Unknown tokens yield
	// ErrSessionNotFound. Expired records are not deleted here.
	UserID(ctx context.Context, token string, ttl time.Duration) (uuid.UUID, error)

	// DeleteExpired removes records created more than olderThan ago.
	// No-op when olderThan <= 0.
	DeleteExpired(ctx context.Context, olderThan time.Duration) error
}

// generateToken creates a cryptographically secure session token.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
