// Package httpserver provides a lightweight wrapper around net/http that adds
// graceful shutdown, configurable server timeouts, health-check handlers, and
// structured logging via slog. It is the shell the billing backend's
// session-aware request stack runs inside.
//
// The core type is Server which augments *http.Server with:
//
//   - Graceful Shutdown – Run blocks until the context is cancelled or an
//     interrupt/TERM signal is received and then shuts the server down using
//     http.Server.Shutdown with a configurable deadline. In-flight requests
//     get to finish, which matters here: a request killed mid-handler never
//     reaches its session Save.
//
//   - Functional Options – Construction goes through New or NewFromConfig
//     together with Option helpers such as WithAddr, WithReadTimeout and
//     WithLogger.
//
//   - Health Checks – HealthCheckHandler returns an http.HandlerFunc that can
//     be mounted as both liveness and readiness probes; readiness probes take
//     the dependency checkers exported by pkg/mongo, pkg/redis and pkg/pg.
//
// # Usage
//
//	import (
//		"context"
//		"log/slog"
//		"net/http"
//
//		"github.com/go-chi/chi/v5"
//		"github.com/dmitrymomot/invoicekit/pkg/httpserver"
//	)
//
//	func main() {
//		r := chi.NewRouter()
//		r.Use(manager.Middleware) // session manager from pkg/session
//		r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), slog.Default()))
//		r.Get("/readyz", httpserver.HealthCheckHandler(context.Background(), slog.Default(),
//			mongo.Healthcheck(client)))
//
//		srv := httpserver.New(
//			httpserver.WithAddr(":8080"),
//			httpserver.WithShutdownTimeout(10*time.Second),
//			httpserver.WithLogger(slog.Default()),
//		)
//
//		if err := srv.Run(context.Background(), r); err != nil {
//			slog.Error("server stopped", "err", err)
//		}
//	}
//
// # Errors
//
// Run wraps all listen errors with ErrStart, while Shutdown wraps underlying
// shutdown errors with ErrShutdown. Use errors.Is to distinguish them.
package httpserver
