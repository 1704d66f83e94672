// Package userstore persists user credential records and exposes
// predicate-based lookup and update on top of interchangeable backends.
//
// The Store interface is deliberately small: Add enforces email uniqueness,
// FindBy resolves a field/value predicate to the first matching user, and
// Update mutates a whitelisted set of attributes in place. Two backends ship
// out of the box: a mutex-guarded in-memory map for tests and small
// deployments, and a pgx-backed Postgres store for production.
//
// # Usage
//
//	store := userstore.NewMemoryStore()
//	user, err := store.Add(ctx, "jane@example.com", hash)
//	if err != nil {
//	    // userstore.ErrDuplicateEmail, etc.
//	}
//
//	user, err = store.FindBy(ctx, userstore.Query{"email": "jane@example.com"})
//	err = store.Update(ctx, user.ID, userstore.Query{"reset_token": token})
//
// Predicates reference column names, not struct fields; the recognized set is
// id, email, password_hash and reset_token. Anything else fails with
// ErrUnknownField so typos surface immediately instead of silently matching
// nothing.
package userstore
