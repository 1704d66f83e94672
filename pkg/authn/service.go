package authn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/password"
	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/pkg/userstore"
)

// Authenticator defines the credential lifecycle operations exposed to the
// routing layer.
type Authenticator interface {
	Register(ctx context.Context, email, plaintext string) (*userstore.User, error)
	ValidateLogin(ctx context.Context, email, plaintext string) bool
	Login(ctx context.Context, email, plaintext string) (string, error)
	Logout(ctx context.Context, token string) error
	UserFromSession(ctx context.Context, token string) (*userstore.User, error)
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	UpdatePassword(ctx context.Context, resetToken, newPlaintext string) error
}

// service implements Authenticator over a user store and a session store,
// which it owns for the process lifetime.
type service struct {
	users    userstore.Store
	sessions session.Store
	hasher   *password.Hasher
	ttl      time.Duration
	log      *slog.Logger
}

// Option configures the service during construction.
type Option func(*service)

// WithHasher replaces the default password hasher.
func WithHasher(h *password.Hasher) Option {
	return func(s *service) {
		s.hasher = h
	}
}

// WithSessionTTL sets the session time-to-live applied when resolving
// tokens. Zero or negative means sessions never expire.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *service) {
		s.ttl = ttl
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) Option {
	return func(s *service) {
		s.log = log
	}
}

// NewService creates the credential lifecycle service.
func NewService(users userstore.Store, sessions session.Store, opts ...Option) Authenticator {
	s := &service{
		users:    users,
		sessions: sessions,
		hasher:   password.New(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register hashes the password and stores a new user.
func (s *service) Register(ctx context.Context, email, plaintext string) (*userstore.User, error) {
	email = normalizeEmail(email)

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Add(ctx, email, hash)
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("authn: register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		logger.UserID(user.ID.String()),
		slog.String("email", user.Email),
	)
	return user, nil
}

// ValidateLogin reports whether the email/password pair matches a stored
// user. Fails closed: unknown email, store errors and hash mismatches all
// yield false.
func (s *service) ValidateLogin(ctx context.Context, email, plaintext string) bool {
	user, err := s.users.FindBy(ctx, userstore.Query{userstore.FieldEmail: normalizeEmail(email)})
	if err != nil {
		return false
	}
	return s.hasher.Verify(plaintext, user.PasswordHash)
}

// Login validates the credentials and creates a session for the user.
func (s *service) Login(ctx context.Context, email, plaintext string) (string, error) {
	email = normalizeEmail(email)
	if !s.ValidateLogin(ctx, email, plaintext) {
		return "", ErrUnauthorized
	}

	user, err := s.users.FindBy(ctx, userstore.Query{userstore.FieldEmail: email})
	if err != nil {
		return "", fmt.Errorf("authn: login: %w", err)
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", fmt.Errorf("authn: create session: %w", err)
	}

	s.log.InfoContext(ctx, "session created", logger.UserID(user.ID.String()))
	return token, nil
}

// Logout resolves the token and destroys every session of its owner.
func (s *service) Logout(ctx context.Context, token string) error {
	user, err := s.UserFromSession(ctx, token)
	if err != nil {
		return err
	}

	if err := s.sessions.Destroy(ctx, user.ID); err != nil {
		return fmt.Errorf("authn: destroy sessions: %w", err)
	}

	s.log.InfoContext(ctx, "sessions destroyed", logger.UserID(user.ID.String()))
	return nil
}

// UserFromSession resolves a session token to its owning user, enforcing
// the configured TTL. Returns ErrForbidden when the token is unknown or
// expired, or when the user record has vanished.
func (s *service) UserFromSession(ctx context.Context, token string) (*userstore.User, error) {
	if token == "" {
		return nil, ErrForbidden
	}

	userID, err := s.sessions.UserID(ctx, token, s.ttl)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) || errors.Is(err, session.ErrSessionExpired) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("authn: resolve session: %w", err)
	}

	user, err := s.users.FindBy(ctx, userstore.Query{userstore.FieldID: userID})
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, fmt.Errorf("authn: load user: %w", err)
	}
	return user, nil
}

// RequestPasswordReset stores a fresh single-use reset token on the user
// record and returns it. Token delivery is the caller's concern.
func (s *service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindBy(ctx, userstore.Query{userstore.FieldEmail: normalizeEmail(email)})
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return "", ErrNotRegistered
		}
		return "", fmt.Errorf("authn: reset request: %w", err)
	}

	resetToken := uuid.NewString()
	if err := s.users.Update(ctx, user.ID, userstore.Query{userstore.FieldResetToken: resetToken}); err != nil {
		return "", fmt.Errorf("authn: store reset token: %w", err)
	}

	s.log.InfoContext(ctx, "password reset requested", logger.UserID(user.ID.String()))
	return resetToken, nil
}

// UpdatePassword consumes a reset token: stores the new password hash and
// clears the token so it cannot be replayed.
func (s *service) UpdatePassword(ctx context.Context, resetToken, newPlaintext string) error {
	if resetToken == "" {
		return ErrInvalidResetToken
	}

	user, err := s.users.FindBy(ctx, userstore.Query{userstore.FieldResetToken: resetToken})
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("authn: lookup reset token: %w", err)
	}

	hash, err := s.hasher.Hash(newPlaintext)
	if err != nil {
		return err
	}

	err = s.users.Update(ctx, user.ID, userstore.Query{
		userstore.FieldPasswordHash: hash,
		userstore.FieldResetToken:   "",
	})
	if err != nil {
		return fmt.Errorf("authn: update password: %w", err)
	}

	s.log.InfoContext(ctx, "password updated", logger.UserID(user.ID.String()))
	return nil
}

// normalizeEmail trims whitespace and lowercases; emails are compared
// case-insensitively everywhere.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Compile-time interface assertion
var _ Authenticator = (*service)(nil)
