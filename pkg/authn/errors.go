package authn

import "errors"

var (
	// ErrAlreadyRegistered indicates a registration with a taken email.
	ErrAlreadyRegistered = errors.New("authn: email already registered")

	// ErrUnauthorized indicates bad login credentials.
	ErrUnauthorized = errors.New("authn: invalid credentials")

	// ErrForbidden indicates a well-formed but unresolvable session token.
	ErrForbidden = errors.New("authn: session not resolvable")

	// ErrNotRegistered indicates a password-reset request for an unknown
	// email.
	ErrNotRegistered = errors.New("authn: email not registered")

	// ErrInvalidResetToken indicates a stale, consumed or unknown reset
	// token.
	ErrInvalidResetToken = errors.New("authn: invalid reset token")
)
