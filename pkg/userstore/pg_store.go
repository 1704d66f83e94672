package userstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/authkit/pkg/pg"
)

// PGStore implements Store backed by a Postgres users table. Email
// uniqueness is enforced by a unique constraint, so concurrent Adds with
// the same email cannot both succeed regardless of pool size.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a Postgres-backed user store.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Add inserts a user with a fresh id.
func (s *PGStore) Add(ctx context.Context, email string, passwordHash []byte) (*User, error) {
	user := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`,
		user.ID, user.Email, user.PasswordHash,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("userstore: insert user: %w", err)
	}

	return user, nil
}

// FindBy returns the first user matching every predicate entry, ordered by
// id for determinism when a predicate matches multiple rows.
func (s *PGStore) FindBy(ctx context.Context, q Query) (*User, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}

	where := make([]string, 0, len(q))
	args := make([]any, 0, len(q))
	// Iterate the whitelist, not the map, to keep the statement text stable.
	for _, field := range []string{FieldID, FieldEmail, FieldPasswordHash, FieldResetToken} {
		value, ok := q[field]
		if !ok {
			continue
		}
		args = append(args, value)
		where = append(where, fmt.Sprintf("%s = $%d", field, len(args)))
	}

	var (
		user       User
		resetToken *string
	)
	query := `SELECT id, email, password_hash, reset_token FROM users WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY id LIMIT 1`
	err := s.pool.QueryRow(ctx, query, args...).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &resetToken)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("userstore: find user: %w", err)
	}
	if resetToken != nil {
		user.ResetToken = *resetToken
	}

	return &user, nil
}

// Update mutates the given attributes of the user with the given id.
func (s *PGStore) Update(ctx context.Context, id uuid.UUID, fields Query) error {
	if err := validateFields(fields); err != nil {
		return err
	}

	set := make([]string, 0, len(fields))
	args := []any{id}
	for _, field := range []string{FieldEmail, FieldPasswordHash, FieldResetToken} {
		value, ok := fields[field]
		if !ok {
			continue
		}
		// Empty reset token means "no reset pending"; persist as NULL so the
		// unique constraint on reset_token ignores cleared tokens.
		if field == FieldResetToken {
			if token, _ := value.(string); token == "" {
				value = nil
			}
		}
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", field, len(args)))
	}

	query := `UPDATE users SET ` + strings.Join(set, ", ") + ` WHERE id = $1`
	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("userstore: update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Compile-time interface assertion
var _ Store = (*PGStore)(nil)
