// Package redisstore persists session records as JSON envelopes in Redis,
// leaning on native key expiry: every write carries a TTL derived from the
// record's expiry, so expired sessions vanish without any sweep.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/invoicekit/pkg/session"
)

const defaultKeyPrefix = "session:"

// envelope is the stored value layout. The payload rides as base64 through
// JSON's []byte encoding; the timestamps travel alongside so a read can
// rebuild the full record.
type envelope struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store implements session.Store on a Redis client.
type Store struct {
	client    redis.UniversalClient
	keyPrefix string
}

var _ session.Store = (*Store)(nil)

// Option configures the store
type Option func(*Store)

// WithKeyPrefix overrides the key namespace (default: "session:")
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		s.keyPrefix = prefix
	}
}

// New creates a session record store on the given client.
func New(client redis.UniversalClient, opts ...Option) *Store {
	s := &Store{
		client:    client,
		keyPrefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindLive returns the record for id if it exists and has not expired.
func (s *Store) FindLive(ctx context.Context, id string) (*session.Record, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrNotFound
		}
		return nil, errors.Join(session.ErrStoreUnavailable, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// An unreadable envelope reads as absent; the caller fails open
		// either way.
		return nil, session.ErrNotFound
	}

	// Redis expiry is authoritative, but clock skew between the app and
	// the server could leave a key alive past its recorded expiry.
	if !env.ExpiresAt.After(time.Now()) {
		return nil, session.ErrNotFound
	}

	return &session.Record{
		ID:        id,
		Payload:   env.Data,
		ExpiresAt: env.ExpiresAt,
		UpdatedAt: env.UpdatedAt,
	}, nil
}

// Upsert creates or replaces the record, with the key's TTL pinned to the
// record expiry.
func (s *Store) Upsert(ctx context.Context, rec session.Record) error {
	if rec.ID == "" {
		return session.ErrInvalidRecord
	}

	ttl := time.Until(rec.ExpiresAt)
	if ttl <= 0 {
		// An already-expired record must read as absent; SET also rejects
		// non-positive TTLs. Drop whatever the key held before.
		return s.Delete(ctx, rec.ID)
	}

	raw, err := json.Marshal(envelope{
		Data:      rec.Payload,
		ExpiresAt: rec.ExpiresAt,
		UpdatedAt: rec.UpdatedAt,
	})
	if err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}

	if err := s.client.Set(ctx, s.key(rec.ID), raw, ttl).Err(); err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	return nil
}

// Delete removes the record. Deleting a missing id is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteExpired reports zero work: Redis reclaims expired keys natively.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

func (s *Store) key(id string) string {
	return s.keyPrefix + id
}
