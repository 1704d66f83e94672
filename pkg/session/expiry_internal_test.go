package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backdate shifts a record's creation time so expiry can be exercised
// without sleeping.
func backdate(t *testing.T, store *MemoryStore, token string, age time.Duration) {
	t.Helper()

	store.mu.Lock()
	defer store.mu.Unlock()

	rec, ok := store.records[token]
	require.True(t, ok)
	rec.CreatedAt = time.Now().Add(-age)
}

func TestMemoryStore_LazyExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore(0, 0)
	defer store.Close()

	userID := uuid.New()
	token, err := store.Create(ctx, userID)
	require.NoError(t, err)

	t.Run("old session valid with zero ttl", func(t *testing.T) {
		backdate(t, store, token, 1000*time.Second)

		resolved, err := store.UserID(ctx, token, 0)
		require.NoError(t, err)
		assert.Equal(t, userID, resolved)
	})

	t.Run("session aged past ttl expires", func(t *testing.T) {
		backdate(t, store, token, 6*time.Second)

		_, err := store.UserID(ctx, token, 5*time.Second)
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("session within ttl resolves", func(t *testing.T) {
		backdate(t, store, token, 4*time.Second)

		resolved, err := store.UserID(ctx, token, 5*time.Second)
		require.NoError(t, err)
		assert.Equal(t, userID, resolved)
	})

	t.Run("expired record is not evicted by reads", func(t *testing.T) {
		backdate(t, store, token, 10*time.Second)

		_, err := store.UserID(ctx, token, 5*time.Second)
		require.ErrorIs(t, err, ErrSessionExpired)

		// Still resolvable in never-expires mode, so the read left it alone.
		resolved, err := store.UserID(ctx, token, 0)
		require.NoError(t, err)
		assert.Equal(t, userID, resolved)
	})
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore(0, 0)
	defer store.Close()

	userID := uuid.New()
	stale, err := store.Create(ctx, userID)
	require.NoError(t, err)
	fresh, err := store.Create(ctx, userID)
	require.NoError(t, err)

	backdate(t, store, stale, time.Hour)

	require.NoError(t, store.DeleteExpired(ctx, 30*time.Minute))

	_, err = store.UserID(ctx, stale, 0)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.UserID(ctx, fresh, 0)
	assert.NoError(t, err)

	t.Run("non-positive age is a no-op", func(t *testing.T) {
		require.NoError(t, store.DeleteExpired(ctx, 0))
		_, err := store.UserID(ctx, fresh, 0)
		assert.NoError(t, err)
	})
}
