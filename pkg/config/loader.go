package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the configuration struct from environment variables using
// its `env` field tags. The first call in a process also reads the default
// .env file into the environment; a missing .env file is not an error, it
// simply means the process runs on the environment it was started with.
//
// Example:
//
//	type SessionConfig struct {
//		CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"session_id"`
//		Lifetime   time.Duration `env:"SESSION_DEFAULT_LIFETIME" envDefault:"24h"`
//	}
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails. Meant
// for startup-critical configuration where a misconfigured process must not
// come up at all.
//
// Example:
//
//	var cfg SessionConfig
//	config.MustLoad(&cfg)
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
