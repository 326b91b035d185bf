// Package pg bootstraps the PostgreSQL layer for deployments that keep
// session records in Postgres rather than MongoDB or Redis.
//
// It wraps pgx/v5 with three cooperating pieces:
//
//   - Config – pool limits, retry budget and migration settings, populated
//     from environment variables through pkg/config.
//   - Connect – opens a *pgxpool.Pool and retries with linear backoff until
//     the database answers a ping.
//   - Migrate – runs embedded goose migrations against the pool, so the
//     schema is current before the service starts serving traffic.
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/invoicekit/pkg/pg"
//		"github.com/dmitrymomot/invoicekit/pkg/session/pgstore"
//	)
//
//	var cfg pg.Config // DATABASE_URL etc.
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, pgstore.Migrations, slog.Default()); err != nil {
//		log.Fatal(err)
//	}
//
//	store := pgstore.New(pool)
//
// Register a readiness probe in the serving stack:
//
//	health := pg.Healthcheck(pool)
//
// # Error Handling
//
// Bootstrap failures surface as sentinels (ErrFailedToOpenDBConnection,
// ErrFailedToApplyMigrations, ...) joined with the underlying cause, so both
// errors.Is and unwrapping work. IsNotFoundError and IsDuplicateKeyError
// classify the pgx errors query code meets most often.
package pg
