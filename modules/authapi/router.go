package authapi

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/authkit/pkg/authn"
	"github.com/dmitrymomot/authkit/pkg/authstrategy"
)

// Service wires the credential lifecycle and an authentication strategy
// into an HTTP surface.
type Service struct {
	cfg      Config
	auth     authn.Authenticator
	strategy authstrategy.Strategy
	log      *slog.Logger
}

// New creates the HTTP module.
func New(cfg Config, auth authn.Authenticator, strategy authstrategy.Strategy, log *slog.Logger) *Service {
	return &Service{
		cfg:      cfg,
		auth:     auth,
		strategy: strategy,
		log:      log,
	}
}

// Router returns the module's routes behind the Guard middleware.
func (s *Service) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.Guard)

	r.Get("/", s.home)
	r.Get("/api/v1/status", s.status)
	r.Post("/users", s.register)
	r.Post("/sessions", s.login)
	r.Delete("/sessions", s.logout)
	r.Get("/profile", s.profile)
	r.Post("/reset_password", s.requestPasswordReset)
	r.Put("/reset_password", s.updatePassword)

	return r
}
