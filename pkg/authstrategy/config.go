package authstrategy

import (
	"strconv"
	"time"
)

// Config holds session strategy configuration.
type Config struct {
	// CookieName is the name of the cookie carrying the session token.
	CookieName string `env:"SESSION_NAME" envDefault:"session_id"`

	// SessionDuration is the session time-to-live in whole seconds.
	// Absent or non-numeric values mean sessions never expire.
	SessionDuration string `env:"SESSION_DURATION"`
}

// TTL parses SessionDuration. Anything that is not a positive integer
// number of seconds yields zero, the never-expires mode.
func (c Config) TTL() time.Duration {
	seconds, err := strconv.Atoi(c.SessionDuration)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
