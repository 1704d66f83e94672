package userstore

import "errors"

var (
	// ErrDuplicateEmail indicates an Add with an email that already exists.
	ErrDuplicateEmail = errors.New("userstore: email already exists")

	// ErrNotFound indicates no user matched the predicate or id.
	ErrNotFound = errors.New("userstore: user not found")

	// ErrInvalidQuery indicates an empty predicate.
	ErrInvalidQuery = errors.New("userstore: empty query")

	// ErrUnknownField indicates a predicate or update referencing an
	// unrecognized attribute.
	ErrUnknownField = errors.New("userstore: unknown field")
)
