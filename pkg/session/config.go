package session

import "time"

// Config holds session configuration
type Config struct {
	// CookieName is the name of the identifier cookie (default: "session_id")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session_id"`

	// KeyPrefix namespaces identifiers in transit: the cookie carries
	// KeyPrefix+id while stores always key records by the bare id.
	KeyPrefix string `env:"SESSION_KEY_PREFIX" envDefault:"session:"`

	// DefaultLifetime applies to sessions with Permanent unset
	DefaultLifetime time.Duration `env:"SESSION_DEFAULT_LIFETIME" envDefault:"24h"`

	// PermanentLifetime applies to sessions with Permanent set
	PermanentLifetime time.Duration `env:"SESSION_PERMANENT_LIFETIME" envDefault:"168h"`

	// CleanupInterval for the default in-memory store's sweep (0 to disable)
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		CookieName:        "session_id",
		KeyPrefix:         "session:",
		DefaultLifetime:   24 * time.Hour,
		PermanentLifetime: 7 * 24 * time.Hour,
		CleanupInterval:   5 * time.Minute,
	}
}

// Lifetime returns the save-time lifetime for a session
func (c Config) Lifetime(permanent bool) time.Duration {
	if permanent {
		return c.PermanentLifetime
	}
	return c.DefaultLifetime
}

// NewFromConfig creates a new Manager from the provided Config.
// Requires a cookie manager via options; the store defaults to in-memory.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := []Option{
		WithConfig(cfg),
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
