package userstore

import (
	"bytes"
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore implements Store using in-memory storage. All operations take
// the mutex across check and mutation, so concurrent Adds with the same
// email serialize and exactly one succeeds.
type MemoryStore struct {
	mu    sync.RWMutex
	users []*User // insertion order, keeps FindBy deterministic
}

// NewMemoryStore creates a new in-memory user store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add creates a user with a fresh id.
func (m *MemoryStore) Add(ctx context.Context, email string, passwordHash []byte) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	user := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: bytes.Clone(passwordHash),
	}
	m.users = append(m.users, user)

	userCopy := *user
	userCopy.PasswordHash = bytes.Clone(user.PasswordHash)
	return &userCopy, nil
}

// FindBy returns the first user matching every predicate entry, in
// insertion order.
func (m *MemoryStore) FindBy(ctx context.Context, q Query) (*User, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if matches(u, q) {
			userCopy := *u
			userCopy.PasswordHash = bytes.Clone(u.PasswordHash)
			return &userCopy, nil
		}
	}
	return nil, ErrNotFound
}

// Update mutates the given attributes of the user with the given id.
func (m *MemoryStore) Update(ctx context.Context, id uuid.UUID, fields Query) error {
	if err := validateFields(fields); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.ID != id {
			continue
		}
		for field, value := range fields {
			switch field {
			case FieldEmail:
				u.Email, _ = value.(string)
			case FieldPasswordHash:
				hash, _ := value.([]byte)
				u.PasswordHash = bytes.Clone(hash)
			case FieldResetToken:
				u.ResetToken, _ = value.(string)
			}
		}
		return nil
	}
	return ErrNotFound
}

// matches reports whether the user satisfies every predicate entry.
func matches(u *User, q Query) bool {
	for field, value := range q {
		switch field {
		case FieldID:
			switch v := value.(type) {
			case uuid.UUID:
				if u.ID != v {
					return false
				}
			case string:
				if u.ID.String() != v {
					return false
				}
			default:
				return false
			}
		case FieldEmail:
			if v, ok := value.(string); !ok || u.Email != v {
				return false
			}
		case FieldPasswordHash:
			if v, ok := value.([]byte); !ok || !bytes.Equal(u.PasswordHash, v) {
				return false
			}
		case FieldResetToken:
			if v, ok := value.(string); !ok || u.ResetToken != v {
				return false
			}
		}
	}
	return true
}

// Compile-time interface assertion
var _ Store = (*MemoryStore)(nil)
