package authstrategy

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/authkit/pkg/password"
	"github.com/dmitrymomot/authkit/pkg/userstore"
)

const basicPrefix = "Basic "

// Basic authenticates requests from an Authorization header carrying a
// base64-encoded email:password pair. Credentials are verified against the
// user store on every request; nothing is cached.
type Basic struct {
	users  userstore.Store
	hasher *password.Hasher
}

// NewBasic creates a header-credential strategy over the given user store.
func NewBasic(users userstore.Store, hasher *password.Hasher) *Basic {
	return &Basic{users: users, hasher: hasher}
}

// RequireAuth applies the shared excluded-path rule.
func (b *Basic) RequireAuth(path string, excluded []string) bool {
	return requireAuth(path, excluded)
}

// ExtractCredential returns the raw Authorization header value.
func (b *Basic) ExtractCredential(r *http.Request) string {
	if r == nil {
		return ""
	}
	return r.Header.Get("Authorization")
}

// ResolveIdentity decodes the header credential and verifies it against the
// stored password hash.
func (b *Basic) ResolveIdentity(ctx context.Context, r *http.Request) (*userstore.User, error) {
	header := b.ExtractCredential(r)
	if header == "" {
		return nil, ErrNoCredential
	}

	email, plaintext, ok := decodeBasic(header)
	if !ok {
		return nil, ErrInvalidCredential
	}

	user, err := b.users.FindBy(ctx, userstore.Query{userstore.FieldEmail: email})
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if !b.hasher.Verify(plaintext, user.PasswordHash) {
		return nil, ErrInvalidCredential
	}
	return user, nil
}

// decodeBasic unwraps "Basic base64(email:password)". The password may
// itself contain colons; only the first one separates the pair.
func decodeBasic(header string) (email, plaintext string, ok bool) {
	if !strings.HasPrefix(header, basicPrefix) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, basicPrefix))
	if err != nil {
		return "", "", false
	}

	email, plaintext, ok = strings.Cut(string(decoded), ":")
	if !ok || email == "" {
		return "", "", false
	}
	return email, plaintext, true
}

// Compile-time interface assertion
var _ Strategy = (*Basic)(nil)
