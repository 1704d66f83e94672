package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/session"
)

func TestMemoryStore_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := session.NewMemoryStore(0, 0)
	defer store.Close()

	t.Run("mints resolvable token", func(t *testing.T) {
		userID := uuid.New()
		token, err := store.Create(ctx, userID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		resolved, err := store.UserID(ctx, token, 0)
		require.NoError(t, err)
		assert.Equal(t, userID, resolved)
	})

	t.Run("tokens are unique per session", func(t *testing.T) {
		userID := uuid.New()
		first, err := store.Create(ctx, userID)
		require.NoError(t, err)
		second, err := store.Create(ctx, userID)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestMemoryStore_UserID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := session.NewMemoryStore(0, 0)
	defer store.Close()

	t.Run("unknown token", func(t *testing.T) {
		_, err := store.UserID(ctx, "no-such-token", 0)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		token, err := store.Create(ctx, uuid.New())
		require.NoError(t, err)

		_, err = store.UserID(ctx, token, 0)
		assert.NoError(t, err)
		_, err = store.UserID(ctx, token, -1)
		assert.NoError(t, err)
	})

	t.Run("fresh session within ttl", func(t *testing.T) {
		userID := uuid.New()
		token, err := store.Create(ctx, userID)
		require.NoError(t, err)

		resolved, err := store.UserID(ctx, token, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, userID, resolved)
	})
}

func TestMemoryStore_Destroy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := session.NewMemoryStore(0, 0)
	defer store.Close()

	t.Run("removes all sessions of the user", func(t *testing.T) {
		userID := uuid.New()
		first, err := store.Create(ctx, userID)
		require.NoError(t, err)
		second, err := store.Create(ctx, userID)
		require.NoError(t, err)

		require.NoError(t, store.Destroy(ctx, userID))

		_, err = store.UserID(ctx, first, 0)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
		_, err = store.UserID(ctx, second, 0)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("leaves other users alone", func(t *testing.T) {
		alice, bob := uuid.New(), uuid.New()
		aliceToken, err := store.Create(ctx, alice)
		require.NoError(t, err)
		_, err = store.Create(ctx, bob)
		require.NoError(t, err)

		require.NoError(t, store.Destroy(ctx, bob))

		resolved, err := store.UserID(ctx, aliceToken, 0)
		require.NoError(t, err)
		assert.Equal(t, alice, resolved)
	})

	t.Run("no-op without sessions", func(t *testing.T) {
		assert.NoError(t, store.Destroy(ctx, uuid.New()))
	})
}

func TestRecord_ExpiredAt(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rec := &session.Record{Token: "tok", UserID: uuid.New(), CreatedAt: createdAt}

	t.Run("non-positive ttl never expires", func(t *testing.T) {
		t.Parallel()
		assert.False(t, rec.ExpiredAt(createdAt.Add(1000*time.Second), 0))
		assert.False(t, rec.ExpiredAt(createdAt.Add(1000*time.Hour), -time.Second))
	})

	t.Run("within ttl", func(t *testing.T) {
		t.Parallel()
		assert.False(t, rec.ExpiredAt(createdAt.Add(4*time.Second), 5*time.Second))
	})

	t.Run("past ttl", func(t *testing.T) {
		t.Parallel()
		assert.True(t, rec.ExpiredAt(createdAt.Add(6*time.Second), 5*time.Second))
	})

	t.Run("exactly at ttl still valid", func(t *testing.T) {
		t.Parallel()
		assert.False(t, rec.ExpiredAt(createdAt.Add(5*time.Second), 5*time.Second))
	})
}
