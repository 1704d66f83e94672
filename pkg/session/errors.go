package session

import "errors"

var (
	// ErrSessionNotFound indicates the token is unknown to the store.
	ErrSessionNotFound = errors.New("session: not found")

	// ErrSessionExpired indicates the record outlived the given ttl.
	ErrSessionExpired = errors.New("session: expired")

	// ErrTokenGeneration indicates the random source failed.
	ErrTokenGeneration = errors.New("session: token generation failed")

	// ErrTokenCollision indicates a freshly generated token already exists.
	// With 256-bit random tokens this is an invariant violation, not a
	// condition to retry.
	ErrTokenCollision = errors.New("session: token collision")
)
