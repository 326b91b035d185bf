package pgstore

import (
	"context"
	"embed"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/invoicekit/pkg/pg"
	"github.com/dmitrymomot/invoicekit/pkg/session"
)

// Migrations holds the goose migrations that own the sessions table schema.
// Apply them through pg.Migrate with MigrationsPath set to "migrations".
//
//go:embed migrations/*.sql
var Migrations embed.FS

const (
	findLiveQuery = `SELECT id, data, expires_at, updated_at FROM sessions WHERE id = $1 AND expires_at > now()`

	upsertQuery = `INSERT INTO sessions (id, data, expires_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET data = EXCLUDED.data, expires_at = EXCLUDED.expires_at, updated_at = EXCLUDED.updated_at`

	deleteQuery = `DELETE FROM sessions WHERE id = $1`

	deleteExpiredQuery = `DELETE FROM sessions WHERE expires_at <= now()`
)

// Store implements session.Store on a PostgreSQL table.
type Store struct {
	pool   *pgxpool.Pool
	ticker *time.Ticker
	done   chan struct{}
}

var _ session.Store = (*Store)(nil)

type config struct {
	cleanupInterval time.Duration
}

// Option configures the store
type Option func(*config)

// WithCleanupInterval starts a background sweep of expired rows at the
// given interval. PostgreSQL has no TTL machinery of its own, so without
// the sweep (or an external job calling DeleteExpired) dead rows accumulate
// until something removes them. Zero disables the sweep.
func WithCleanupInterval(d time.Duration) Option {
	return func(c *config) {
		c.cleanupInterval = d
	}
}

// New creates a session record store on the given connection pool.
func New(pool *pgxpool.Pool, opts ...Option) *Store {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	store := &Store{
		pool: pool,
		done: make(chan struct{}),
	}

	if cfg.cleanupInterval > 0 {
		store.ticker = time.NewTicker(cfg.cleanupInterval)
		go store.cleanupLoop()
	}

	return store
}

// FindLive returns the record for id if it exists and has not expired. The
// expiry check runs in the query itself, so expired rows are invisible even
// before a sweep removes them.
func (s *Store) FindLive(ctx context.Context, id string) (*session.Record, error) {
	var rec session.Record
	err := s.pool.QueryRow(ctx, findLiveQuery, id).
		Scan(&rec.ID, &rec.Payload, &rec.ExpiresAt, &rec.UpdatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, session.ErrNotFound
		}
		return nil, errors.Join(session.ErrStoreUnavailable, err)
	}

	return &rec, nil
}

// Upsert creates or replaces the record for rec.ID in one atomic write.
func (s *Store) Upsert(ctx context.Context, rec session.Record) error {
	if rec.ID == "" {
		return session.ErrInvalidRecord
	}

	_, err := s.pool.Exec(ctx, upsertQuery,
		rec.ID, rec.Payload, rec.ExpiresAt.UTC(), rec.UpdatedAt.UTC())
	if err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	return nil
}

// Delete removes the record. Deleting a missing id is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.pool.Exec(ctx, deleteQuery, id); err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteExpired removes every row whose expiry has passed and reports how
// many were removed.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, deleteExpiredQuery)
	if err != nil {
		return 0, errors.Join(session.ErrStoreUnavailable, err)
	}
	return tag.RowsAffected(), nil
}

// Close stops the cleanup goroutine. It does not close the pool, which the
// store shares with the rest of the application.
func (s *Store) Close() error {
	if s.ticker != nil {
		s.ticker.Stop()
		close(s.done)
	}
	return nil
}

// cleanupLoop runs the periodic sweep of expired rows.
func (s *Store) cleanupLoop() {
	for {
		select {
		case <-s.ticker.C:
			_, _ = s.DeleteExpired(context.Background())
		case <-s.done:
			return
		}
	}
}
