package authstrategy

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/pkg/userstore"
)

// Session authenticates requests from an opaque token carried in a named
// cookie. With a positive TTL the variant layers a read-time expiration
// check on top of the session store; with the zero TTL sessions never
// expire. Expired or unknown tokens resolve to ErrInvalidCredential.
type Session struct {
	sessions   session.Store
	users      userstore.Store
	cookieName string
	ttl        time.Duration
}

// SessionOption configures the session strategy.
type SessionOption func(*Session)

// WithTTL sets the session time-to-live. Zero or negative means sessions
// never expire.
func WithTTL(ttl time.Duration) SessionOption {
	return func(s *Session) {
		s.ttl = ttl
	}
}

// NewSession creates a session-token strategy reading the cookie with the
// given name and resolving tokens through the session and user stores.
func NewSession(sessions session.Store, users userstore.Store, cookieName string, opts ...SessionOption) *Session {
	s := &Session{
		sessions:   sessions,
		users:      users,
		cookieName: cookieName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RequireAuth applies the shared excluded-path rule.
func (s *Session) RequireAuth(path string, excluded []string) bool {
	return requireAuth(path, excluded)
}

// ExtractCredential returns the session token from the named cookie.
func (s *Session) ExtractCredential(r *http.Request) string {
	if r == nil || s.cookieName == "" {
		return ""
	}
	cookie, err := r.Cookie(s.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// ResolveIdentity resolves the cookie token to its owning user, enforcing
// the configured TTL.
func (s *Session) ResolveIdentity(ctx context.Context, r *http.Request) (*userstore.User, error) {
	token := s.ExtractCredential(r)
	if token == "" {
		return nil, ErrNoCredential
	}

	userID, err := s.sessions.UserID(ctx, token, s.ttl)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) || errors.Is(err, session.ErrSessionExpired) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	user, err := s.users.FindBy(ctx, userstore.Query{userstore.FieldID: userID})
	if err != nil {
		// The session outlived the user record; treat as unresolvable.
		if errors.Is(err, userstore.ErrNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}
	return user, nil
}

// Compile-time interface assertion
var _ Strategy = (*Session)(nil)
