// Package session maps opaque session tokens to user identifiers with a
// lazy, read-time expiration policy and pluggable storage back-ends.
//
// A session token is a 32-byte crypto/rand value in URL-safe base64,
// distinct from the user's permanent identifier. The Store interface keeps
// expiry out of the stored record: UserID receives the time-to-live on
// every read, so the same record can be served by a strategy that never
// expires sessions (ttl <= 0) and by one that does. Expired records are
// not evicted on read; DeleteExpired sweeps them explicitly, and the
// in-memory store can run the sweep on a ticker.
//
// # Usage
//
//	store := session.NewMemoryStore(0, 0)
//	defer store.Close()
//
//	token, err := store.Create(ctx, userID)
//	uid, err := store.UserID(ctx, token, 30*time.Second)
//	switch {
//	case errors.Is(err, session.ErrSessionNotFound):
//	case errors.Is(err, session.ErrSessionExpired):
//	}
//	_ = store.Destroy(ctx, userID) // drops every session the user owns
//
// Redis and Postgres back-ends provide the same contract for deployments
// where sessions must survive process restarts or be shared between
// replicas.
package session
