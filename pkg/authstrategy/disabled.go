package authstrategy

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/authkit/pkg/userstore"
)

// Disabled is the "authentication not configured" variant. Every hook
// returns its zero value: no path requires authentication, no credential is
// ever extracted and the resolved identity is always nil. Callers must
// treat the nil identity as unauthenticated.
type Disabled struct{}

// NewDisabled creates the no-op strategy.
func NewDisabled() Disabled {
	return Disabled{}
}

func (Disabled) RequireAuth(path string, excluded []string) bool {
	return false
}

func (Disabled) ExtractCredential(r *http.Request) string {
	return ""
}

func (Disabled) ResolveIdentity(ctx context.Context, r *http.Request) (*userstore.User, error) {
	return nil, nil
}

// Compile-time interface assertion
var _ Strategy = Disabled{}
