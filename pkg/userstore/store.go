package userstore

import (
	"context"

	"github.com/google/uuid"
)

// Recognized attribute names for Query predicates and Update field sets.
const (
	FieldID           = "id"
	FieldEmail        = "email"
	FieldPasswordHash = "password_hash"
	FieldResetToken   = "reset_token"
)

// Query maps attribute names to expected (FindBy) or new (Update) values.
type Query map[string]any

// Store defines the interface for user credential persistence.
type Store interface {
	// Add creates a user with the given email and password hash.
	// Returns ErrDuplicateEmail when the email is already taken.
	Add(ctx context.Context, email string, passwordHash []byte) (*User, error)

	// FindBy returns the first user matching every predicate entry.
	// Returns ErrInvalidQuery for an empty predicate, ErrUnknownField for
	// unrecognized attributes and ErrNotFound when nothing matches.
	FindBy(ctx context.Context, q Query) (*User, error)

	// Update mutates the given attributes of the user with the given id.
	// Returns ErrNotFound when the id is absent and ErrUnknownField when
	// any attribute is unrecognized; unknown fields fail the whole update.
	Update(ctx context.Context, id uuid.UUID, fields Query) error
}

// validateQuery rejects empty predicates and unrecognized attributes before
// a backend touches its storage, so both backends fail identically.
func validateQuery(q Query) error {
	if len(q) == 0 {
		return ErrInvalidQuery
	}
	for field := range q {
		switch field {
		case FieldID, FieldEmail, FieldPasswordHash, FieldResetToken:
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateFields checks Update field sets; id is immutable.
func validateFields(fields Query) error {
	if len(fields) == 0 {
		return ErrInvalidQuery
	}
	for field := range fields {
		switch field {
		case FieldEmail, FieldPasswordHash, FieldResetToken:
		default:
			return ErrUnknownField
		}
	}
	return nil
}
