package authstrategy_test

import (
	"context"
	"encoding/base64"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/authkit/pkg/authstrategy"
	"github.com/dmitrymomot/authkit/pkg/password"
	"github.com/dmitrymomot/authkit/pkg/userstore"
)

func basicHeader(email, plaintext string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+plaintext))
}

func TestBasic_ExtractCredential(t *testing.T) {
	t.Parallel()

	strategy := authstrategy.NewBasic(userstore.NewMemoryStore(), password.New())

	t.Run("returns authorization header", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Basic abc")
		assert.Equal(t, "Basic abc", strategy.ExtractCredential(r))
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, strategy.ExtractCredential(httptest.NewRequest("GET", "/", nil)))
	})

	t.Run("nil request", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, strategy.ExtractCredential(nil))
	})
}

func TestBasic_ResolveIdentity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	hasher := password.New(password.WithCost(bcrypt.MinCost))
	users := userstore.NewMemoryStore()

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	jane, err := users.Add(ctx, "jane@example.com", hash)
	require.NoError(t, err)

	strategy := authstrategy.NewBasic(users, hasher)

	t.Run("valid credential", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", basicHeader("jane@example.com", "s3cret"))

		user, err := strategy.ResolveIdentity(ctx, r)
		require.NoError(t, err)
		assert.Equal(t, jane.ID, user.ID)
	})

	t.Run("password containing colons", func(t *testing.T) {
		t.Parallel()

		colonHash, err := hasher.Hash("with:colons:inside")
		require.NoError(t, err)
		colonUser, err := users.Add(ctx, "colon@example.com", colonHash)
		require.NoError(t, err)

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", basicHeader("colon@example.com", "with:colons:inside"))

		user, err := strategy.ResolveIdentity(ctx, r)
		require.NoError(t, err)
		assert.Equal(t, colonUser.ID, user.ID)
	})

	t.Run("no header", func(t *testing.T) {
		t.Parallel()

		_, err := strategy.ResolveIdentity(ctx, httptest.NewRequest("GET", "/", nil))
		assert.ErrorIs(t, err, authstrategy.ErrNoCredential)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer token")

		_, err := strategy.ResolveIdentity(ctx, r)
		assert.ErrorIs(t, err, authstrategy.ErrInvalidCredential)
	})

	t.Run("broken base64", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Basic %%%not-base64%%%")

		_, err := strategy.ResolveIdentity(ctx, r)
		assert.ErrorIs(t, err, authstrategy.ErrInvalidCredential)
	})

	t.Run("no colon in payload", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("jane@example.com")))

		_, err := strategy.ResolveIdentity(ctx, r)
		assert.ErrorIs(t, err, authstrategy.ErrInvalidCredential)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", basicHeader("nobody@example.com", "s3cret"))

		_, err := strategy.ResolveIdentity(ctx, r)
		assert.ErrorIs(t, err, authstrategy.ErrInvalidCredential)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", basicHeader("jane@example.com", "not-it"))

		_, err := strategy.ResolveIdentity(ctx, r)
		assert.ErrorIs(t, err, authstrategy.ErrInvalidCredential)
	})
}
