package session

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryStore implements Store with an in-process map. It backs tests and
// development; production deployments use one of the database stores.
// Records are copied on the way in and out so callers cannot mutate stored
// state through retained slices.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
	ticker  *time.Ticker
	done    chan struct{}
}

// NewMemoryStore creates an in-memory record store. A positive
// cleanupInterval starts a background sweep of expired records; pass 0 to
// disable it. FindLive filters expired records regardless.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		records: make(map[string]Record),
		done:    make(chan struct{}),
	}

	if cleanupInterval > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.cleanupLoop()
	}

	return store
}

// FindLive returns the record for id if it exists and has not expired.
func (m *MemoryStore) FindLive(ctx context.Context, id string) (*Record, error) {
	m.mu.RLock()
	rec, exists := m.records[id]
	m.mu.RUnlock()

	if !exists {
		return nil, ErrNotFound
	}

	if !rec.ExpiresAt.After(time.Now()) {
		m.mu.Lock()
		delete(m.records, id)
		m.mu.Unlock()
		return nil, ErrNotFound
	}

	rec.Payload = slices.Clone(rec.Payload)
	return &rec, nil
}

// Upsert creates or replaces the record for rec.ID.
func (m *MemoryStore) Upsert(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		return ErrInvalidRecord
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rec.Payload = slices.Clone(rec.Payload)
	m.records[rec.ID] = rec
	return nil
}

// Delete removes the record. Deleting a missing id is a no-op.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, id)
	return nil
}

// DeleteExpired removes every record whose expiry has passed.
func (m *MemoryStore) DeleteExpired(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	now := time.Now()
	for id, rec := range m.records {
		if !rec.ExpiresAt.After(now) {
			delete(m.records, id)
			removed++
		}
	}

	return removed, nil
}

// Len reports the number of records currently held, expired included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Close stops the cleanup goroutine.
func (m *MemoryStore) Close() error {
	if m.ticker != nil {
		m.ticker.Stop()
		close(m.done)
	}
	return nil
}

// cleanupLoop runs the periodic sweep of expired records.
func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			_, _ = m.DeleteExpired(context.Background())
		case <-m.done:
			return
		}
	}
}
