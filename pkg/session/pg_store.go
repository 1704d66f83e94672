package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/authkit/pkg/pg"
)

// PGStore implements Store backed by a Postgres sessions table, for
// deployments where sessions must survive restarts without a Redis.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a Postgres-backed session store.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Create mints a token and records it against userID. The primary key on
// token turns the negligible collision case into a hard error.
func (s *PGStore) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO sessions (token, user_id, created_at) VALUES ($1, $2, now())`,
		token, userID,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return "", ErrTokenCollision
		}
		return "", fmt.Errorf("session: insert: %w", err)
	}

	return token, nil
}

// Destroy removes every session owned by userID.
func (s *PGStore) Destroy(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("session: delete by user: %w", err)
	}
	return nil
}

// UserID resolves a token, applying ttl as a read-only expiration check.
func (s *PGStore) UserID(ctx context.Context, token string, ttl time.Duration) (uuid.UUID, error) {
	var (
		userID    uuid.UUID
		createdAt time.Time
	)
	err := s.pool.QueryRow(ctx,
		`SELECT user_id, created_at FROM sessions WHERE token = $1`, token,
	).Scan(&userID, &createdAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return uuid.Nil, ErrSessionNotFound
		}
		return uuid.Nil, fmt.Errorf("session: select: %w", err)
	}

	rec := Record{Token: token, UserID: userID, CreatedAt: createdAt}
	if rec.ExpiredAt(time.Now(), ttl) {
		return uuid.Nil, ErrSessionExpired
	}
	return userID, nil
}

// DeleteExpired removes records created more than olderThan ago.
func (s *PGStore) DeleteExpired(ctx context.Context, olderThan time.Duration) error {
	if olderThan <= 0 {
		return nil
	}
	_, err := s.pool.Exec(ctx,
		`DELETE FROM sessions WHERE created_at < now() - $1::interval`,
		fmt.Sprintf("%f seconds", olderThan.Seconds()),
	)
	if err != nil {
		return fmt.Errorf("session: delete expired: %w", err)
	}
	return nil
}

// Compile-time interface assertion
var _ Store = (*PGStore)(nil)
