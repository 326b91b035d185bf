// Package config loads application configuration from environment
// variables into typed structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the first Load in a process pulls the default `.env` file into the
// environment (if one exists), then every call parses the environment into
// the given struct using its `env` field tags.
//
// # Usage
//
// Describe the configuration as a struct with `env` tags:
//
//	type MongoConfig struct {
//	    ConnectionURL  string        `env:"MONGODB_URL,required"`
//	    ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
//	}
//
// Then populate it at startup:
//
//	import "github.com/dmitrymomot/invoicekit/pkg/config"
//
//	func main() {
//	    var mongoCfg MongoConfig
//	    config.MustLoad(&mongoCfg) // panics on invalid configuration
//
//	    var cookieCfg cookie.Config
//	    if err := config.Load(&cookieCfg); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//	}
//
// Load performs a fresh parse on every call; configuration structs in this
// module are loaded once at startup by their consumers, so there is no
// cache to invalidate and tests can adjust the environment freely between
// calls.
//
// # Error Handling
//
// Sentinel errors compared with `errors.Is`:
//
//   - `ErrParsingConfig` – env vars could not be parsed into the struct.
//   - `ErrNilPointer`    – nil pointer passed to `Load`/`MustLoad`.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
