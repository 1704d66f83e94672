package authstrategy

import "errors"

var (
	// ErrNoCredential indicates the request carries no credential at all
	// (missing header or cookie).
	ErrNoCredential = errors.New("authstrategy: no credential")

	// ErrInvalidCredential indicates a credential was present but could not
	// be resolved to a user (malformed, unknown, expired or mismatched).
	ErrInvalidCredential = errors.New("authstrategy: invalid credential")
)
