package authapi

// Config holds the HTTP module configuration.
type Config struct {
	// CookieName is the name of the cookie carrying the session token.
	CookieName string `env:"SESSION_NAME" envDefault:"session_id"`

	// ExcludedPaths lists path patterns exempt from authentication.
	// Literal entries match by symmetric prefix; a trailing "*" makes an
	// entry an explicit prefix wildcard.
	ExcludedPaths []string `env:"AUTH_EXCLUDED_PATHS" envSeparator:"," envDefault:"/,/users,/sessions,/reset_password,/api/v1/status/"`
}
