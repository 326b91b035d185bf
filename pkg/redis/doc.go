// Package redis connects the go-redis client the redis-backed session
// store runs on.
//
// The package wraps the go-redis client with:
//
//   - A `Connect` helper that retries the connection using the supplied
//     configuration, for deployments where Redis and the app start
//     together.
//   - A health-check helper to integrate Redis into the HTTP server's
//     readiness probe.
//
// Configuration is described by the `Config` struct whose fields are
// populated from environment variables via github.com/caarlos0/env.
//
// # Usage
//
//	import "github.com/dmitrymomot/invoicekit/pkg/redis"
//
//	var cfg redis.Config // REDIS_URL etc.
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error, probably terminate the application
//	}
//	defer client.Close()
//
//	store := redisstore.New(client)
//
// Register a health-check in the serving stack:
//
//	checker := redis.Healthcheck(client)
//	if err := checker(ctx); err != nil {
//	    // redis is not healthy
//	}
//
// # Errors
//
// The package defines sentinel errors (e.g. ErrRedisNotReady) that wrap
// the underlying go-redis errors using errors.Join, so callers can compare
// with errors.Is and still unwrap the cause.
//
// # See Also
//
//   - https://github.com/redis/go-redis – underlying driver
package redis
