package session

import (
	"context"
	"time"
)

// Record is the storage projection of a session: the encoded payload plus
// bookkeeping timestamps. Stores persist records verbatim and never inspect
// the payload.
type Record struct {
	ID        string
	Payload   []byte
	ExpiresAt time.Time
	UpdatedAt time.Time
}

// Store persists session records keyed by identifier.
//
// Implementations must treat expired records as absent: FindLive never
// returns a record whose expiry has passed, whether or not a background
// sweep has reclaimed it yet. Upsert and Delete are idempotent; concurrent
// Upserts to the same identifier resolve last-writer-wins.
type Store interface {
	// FindLive returns the record for id if it exists and has not expired.
	// Absent and expired both yield ErrNotFound.
	FindLive(ctx context.Context, id string) (*Record, error)

	// Upsert creates or replaces the record for rec.ID.
	Upsert(ctx context.Context, rec Record) error

	// Delete removes the record. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteExpired reclaims space held by expired records and reports how
	// many were removed. Reclamation is advisory; FindLive enforces expiry
	// either way.
	DeleteExpired(ctx context.Context) (int64, error)
}
