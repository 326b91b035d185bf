package session

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/invoicekit/pkg/cookie"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithStore sets a custom record store
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithCodec sets a custom payload codec
func WithCodec(codec Codec) Option {
	return func(m *Manager) {
		m.codec = codec
	}
}

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithCookieManager sets the cookie manager that carries the identifier.
// The cookie policy (domain, path, secure, http-only, same-site) lives on
// the manager; the session layer applies it without overriding anything.
func WithCookieManager(cookieMgr *cookie.Manager) Option {
	return func(m *Manager) {
		m.cookieMgr = cookieMgr
	}
}

// WithLogger sets the logger for fail-open and dropped-write events
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// WithCookieName sets the identifier cookie name
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.config.CookieName = name
	}
}

// WithKeyPrefix sets the transit key prefix
func WithKeyPrefix(prefix string) Option {
	return func(m *Manager) {
		m.config.KeyPrefix = prefix
	}
}

// WithLifetimes sets the default and permanent session lifetimes
func WithLifetimes(standard, permanent time.Duration) Option {
	return func(m *Manager) {
		m.config.DefaultLifetime = standard
		m.config.PermanentLifetime = permanent
	}
}

// WithCleanupInterval sets the sweep interval for the default memory store
func WithCleanupInterval(interval time.Duration) Option {
	return func(m *Manager) {
		m.config.CleanupInterval = interval
	}
}
