package authstrategy

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrymomot/authkit/pkg/userstore"
)

// Strategy decides whether a path needs authentication, extracts the
// caller's credential from the request and resolves it to a user.
type Strategy interface {
	// RequireAuth reports whether the given path requires authentication
	// against the excluded-path set.
	RequireAuth(path string, excluded []string) bool

	// ExtractCredential returns the raw credential carried by the request,
	// or "" when the request is nil or carries none.
	ExtractCredential(r *http.Request) string

	// ResolveIdentity resolves the request's credential to a user.
	// Returns ErrNoCredential when nothing was sent and
	// ErrInvalidCredential when the credential cannot be resolved.
	ResolveIdentity(ctx context.Context, r *http.Request) (*userstore.User, error)
}

// requireAuth implements the shared excluded-path rule. An empty path or an
// empty excluded set always requires authentication. Matching is symmetric:
// the path being a prefix of an excluded entry exempts it just like the
// reverse, and a trailing "*" turns an entry into an explicit prefix
// wildcard. The symmetric half is broader than exact-or-wildcard matching;
// it is reproduced as deployed rather than silently tightened.
func requireAuth(path string, excluded []string) bool {
	if path == "" {
		return true
	}
	if len(excluded) == 0 {
		return true
	}

	for _, entry := range excluded {
		if entry == "" {
			continue
		}
		switch {
		case entry == path:
			return false
		case strings.HasPrefix(entry, path):
			return false
		case strings.HasPrefix(path, entry):
			return false
		case strings.HasSuffix(entry, "*") && strings.HasPrefix(path, entry[:len(entry)-1]):
			return false
		}
	}
	return true
}
