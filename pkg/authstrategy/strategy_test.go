package authstrategy_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authkit/pkg/authstrategy"
	"github.com/dmitrymomot/authkit/pkg/password"
	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/pkg/userstore"
)

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	strategy := authstrategy.NewBasic(userstore.NewMemoryStore(), password.New())

	tests := []struct {
		name     string
		path     string
		excluded []string
		want     bool
	}{
		{"empty path", "", []string{"/api/v1/status"}, true},
		{"empty excluded set", "/api/v1/users", []string{}, true},
		{"nil excluded set", "/api/v1/users", nil, true},
		{"exact match", "/api/v1/status", []string{"/api/v1/status"}, false},
		{"path prefix of entry", "/api/v1/status", []string{"/api/v1/status/"}, false},
		{"entry prefix of path", "/api/v1/status/extra", []string{"/api/v1/status"}, false},
		{"wildcard entry", "/api/v1/x", []string{"/api/v1/*"}, false},
		{"wildcard non-match", "/api/v2/x", []string{"/api/v1/*"}, true},
		{"unrelated path", "/api/v1/users", []string{"/api/v1/status"}, true},
		{"second entry matches", "/admin", []string{"/api/v1/status", "/admin/"}, false},
		{"empty entry ignored", "/api/v1/users", []string{""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, strategy.RequireAuth(tt.path, tt.excluded))
		})
	}
}

func TestDisabled(t *testing.T) {
	t.Parallel()

	strategy := authstrategy.NewDisabled()
	ctx := context.Background()

	assert.False(t, strategy.RequireAuth("/api/v1/users", nil))
	assert.False(t, strategy.RequireAuth("", nil))
	assert.Empty(t, strategy.ExtractCredential(httptest.NewRequest("GET", "/", nil)))
	assert.Empty(t, strategy.ExtractCredential(nil))

	user, err := strategy.ResolveIdentity(ctx, httptest.NewRequest("GET", "/", nil))
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionStrategySharesExclusionRule(t *testing.T) {
	t.Parallel()

	strategy := authstrategy.NewSession(session.NewMemoryStore(0, 0), userstore.NewMemoryStore(), "session_id")

	assert.False(t, strategy.RequireAuth("/api/v1/status", []string{"/api/v1/status/"}))
	assert.True(t, strategy.RequireAuth("/api/v1/users", []string{}))
	assert.False(t, strategy.RequireAuth("/api/v1/x", []string{"/api/v1/*"}))
}
