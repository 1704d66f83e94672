// Package authstrategy defines the capability interface a routing layer
// uses to decide whether a request needs authentication, to pull the
// caller's credential off the wire and to resolve it to a user.
//
// The variant is chosen at construction time, not sniffed at runtime:
//
//   - Disabled: authentication is not configured; every hook returns its
//     zero value and callers treat the nil identity as unauthenticated.
//   - Basic: reads the Authorization header and resolves a base64
//     email:password pair against the user store.
//   - Session: reads an opaque token from a named cookie and resolves it
//     through the session store, optionally enforcing a time-to-live.
//
// All variants share the excluded-path rule: a request path is exempt from
// authentication when it appears in the excluded set under a symmetric
// prefix match (either string may be a prefix of the other) or under a
// trailing-asterisk wildcard. The symmetric half over-excludes — an entry
// "/api/v1/status/" exempts "/api/v1/status" and every other prefix of the
// entry. Kept for compatibility with existing deployments; tighten with
// care.
//
// # Usage
//
//	strategy := authstrategy.NewSession(sessions, users, cfg.CookieName,
//	    authstrategy.WithTTL(cfg.TTL()),
//	)
//
//	if strategy.RequireAuth(r.URL.Path, excluded) {
//	    user, err := strategy.ResolveIdentity(r.Context(), r)
//	    // errors.Is(err, authstrategy.ErrNoCredential) -> 401
//	    // errors.Is(err, authstrategy.ErrInvalidCredential) -> 403
//	}
package authstrategy
