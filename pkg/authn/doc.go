// Package authn orchestrates the credential lifecycle: registration, login
// validation, session creation and destruction, reset-token issuance and
// password update.
//
// The service owns its user store and session store for the process
// lifetime; nothing else mutates them. Every operation runs synchronously
// within the calling request and surfaces one of the package's sentinel
// errors for the routing layer to map onto HTTP status codes
// (ErrUnauthorized -> 401; ErrForbidden, ErrNotRegistered,
// ErrInvalidResetToken -> 403; ErrAlreadyRegistered -> 400).
//
// # Usage
//
//	svc := authn.NewService(users, sessions,
//	    authn.WithSessionTTL(cfg.TTL()),
//	    authn.WithLogger(log),
//	)
//
//	user, err := svc.Register(ctx, email, pass)
//	token, err := svc.Login(ctx, email, pass)
//	user, err = svc.UserFromSession(ctx, token)
//	reset, err := svc.RequestPasswordReset(ctx, email)
//	err = svc.UpdatePassword(ctx, reset, newPass)
//	err = svc.Logout(ctx, token)
package authn
