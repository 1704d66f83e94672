package session

import (
	"time"

	"github.com/google/uuid"
)

// Record associates a session token with its owning user and creation time.
// Expiry is not part of the record; it is a read-time policy decision.
type Record struct {
	Token     string
	UserID    uuid.UUID
	CreatedAt time.Time
}

// ExpiredAt reports whether the record is past its ttl at the given instant.
// A non-positive ttl means the record never expires.
func (r *Record) ExpiredAt(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.After(r.CreatedAt.Add(ttl))
}
