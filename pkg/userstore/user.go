package userstore

import "github.com/google/uuid"

// User is a persisted credential record. PasswordHash is opaque to this
// package; hashing and verification live in pkg/password. An empty
// ResetToken means no reset is pending (NULL in the Postgres backend).
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
	ResetToken   string
}
