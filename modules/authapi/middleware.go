package authapi

import (
	"net/http"

	"github.com/dmitrymomot/authkit/pkg/logger"
)

// Guard authenticates every request whose path is not excluded. A request
// without any credential is rejected with 401; one whose credential cannot
// be resolved with 403. The resolved user is stored in the request context.
func (s *Service) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.strategy.RequireAuth(r.URL.Path, s.cfg.ExcludedPaths) {
			next.ServeHTTP(w, r)
			return
		}

		if s.strategy.ExtractCredential(r) == "" {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := s.strategy.ResolveIdentity(r.Context(), r)
		if err != nil || user == nil {
			s.log.DebugContext(r.Context(), "credential not resolvable",
				logger.Error(err),
				logger.Component("authapi"),
			)
			respondError(w, http.StatusForbidden, "Forbidden")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}
