package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore implements Store using in-memory storage. When both a
// cleanup interval and a max age are given, a background goroutine sweeps
// expired records periodically; reads stay lazy either way.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
	ticker  *time.Ticker
	done    chan struct{}
}

// NewMemoryStore creates a new in-memory session store. Pass a positive
// cleanupInterval and maxAge to enable the background sweep; zero disables
// it, leaving eviction entirely to explicit DeleteExpired calls.
func NewMemoryStore(cleanupInterval, maxAge time.Duration) *MemoryStore {
	store := &MemoryStore{
		records: make(map[string]*Record),
		done:    make(chan struct{}),
	}

	if cleanupInterval > 0 && maxAge > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.cleanupLoop(maxAge)
	}

	return store
}

// Create mints a token and records it against userID.
func (m *MemoryStore) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[token]; exists {
		return "", ErrTokenCollision
	}

	m.records[token] = &Record{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	return token, nil
}

// Destroy removes every session owned by userID.
func (m *MemoryStore) Destroy(ctx context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for token, rec := range m.records {
		if rec.UserID == userID {
			delete(m.records, token)
		}
	}
	return nil
}

// UserID resolves a token, applying ttl as a read-only expiration check.
func (m *MemoryStore) UserID(ctx context.Context, token string, ttl time.Duration) (uuid.UUID, error) {
	m.mu.RLock()
	rec, exists := m.records[token]
	m.mu.RUnlock()

	if !exists {
		return uuid.Nil, ErrSessionNotFound
	}
	if rec.ExpiredAt(time.Now(), ttl) {
		return uuid.Nil, ErrSessionExpired
	}
	return rec.UserID, nil
}

// DeleteExpired removes records created more than olderThan ago.
func (m *MemoryStore) DeleteExpired(ctx context.Context, olderThan time.Duration) error {
	if olderThan <= 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	for token, rec := range m.records {
		if rec.CreatedAt.Before(cutoff) {
			delete(m.records, token)
		}
	}
	return nil
}

// Close stops the cleanup goroutine.
func (m *MemoryStore) Close() error {
	if m.ticker != nil {
		m.ticker.Stop()
		close(m.done)
	}
	return nil
}

// cleanupLoop runs the periodic sweep of expired records.
func (m *MemoryStore) cleanupLoop(maxAge time.Duration) {
	for {
		select {
		case <-m.ticker.C:
			_ = m.DeleteExpired(context.Background(), maxAge)
		case <-m.done:
			return
		}
	}
}

// Compile-time interface assertion
var _ Store = (*MemoryStore)(nil)
