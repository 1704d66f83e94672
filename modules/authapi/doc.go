// Package authapi mounts the credential lifecycle onto an HTTP router.
//
// The module exposes the registration, login, logout, profile and
// password-reset endpoints, plus a guard middleware driven by an
// authstrategy.Strategy and a configurable excluded-path set. Handlers
// translate the authn sentinel errors into status codes: ErrUnauthorized
// becomes 401; ErrForbidden, ErrNotRegistered and ErrInvalidResetToken
// become 403; ErrAlreadyRegistered becomes 400.
//
//	svc := authapi.New(cfg, authenticator, strategy, log)
//	r := chi.NewRouter()
//	r.Mount("/", svc.Router())
package authapi
