package cookie

import (
	"fmt"
	"net/http"
	"strings"
)

// SameSite is http.SameSite with the textual forms configuration files and
// environment variables use: "default", "lax", "strict", "none".
type SameSite http.SameSite

// UnmarshalText implements encoding.TextUnmarshaler so env parsers can
// populate the value from its textual form.
func (s *SameSite) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "lax":
		*s = SameSite(http.SameSiteLaxMode)
	case "strict":
		*s = SameSite(http.SameSiteStrictMode)
	case "none":
		*s = SameSite(http.SameSiteNoneMode)
	case "default":
		*s = SameSite(http.SameSiteDefaultMode)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSameSite, string(text))
	}
	return nil
}

// Config holds the cookie attribute policy. Cross-origin deployments (a
// separately hosted frontend) require Secure=true with SameSite=none for
// browsers to accept the cookie at all; same-origin development keeps the
// lax/insecure defaults.
type Config struct {
	Path     string   `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string   `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool     `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool     `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite SameSite `env:"COOKIE_SAME_SITE" envDefault:"lax"`
}

// DefaultConfig returns default cookie configuration
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		Domain:   "",
		Secure:   false,
		HttpOnly: true,
		SameSite: SameSite(http.SameSiteLaxMode),
	}
}

// NewFromConfig creates a new Manager from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := make([]Option, 0, 5)

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	configOpts = append(configOpts,
		WithSecure(cfg.Secure),
		WithHTTPOnly(cfg.HttpOnly),
	)
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(http.SameSite(cfg.SameSite)))
	}

	// Append any additional options provided
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
