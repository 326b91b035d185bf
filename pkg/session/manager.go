package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/invoicekit/pkg/cookie"
)

// Manager drives the session lifecycle. Open resolves the request's
// identifier cookie to a session mapping; Save persists the mapping and
// refreshes the cookie. Every store and codec failure on the way is
// contained here: reads fail open to a fresh session, writes are logged and
// dropped, and the response completes either way. Handler code never
// observes a session persistence error.
type Manager struct {
	store     Store
	codec     Codec
	config    Config
	cookieMgr *cookie.Manager
	log       *slog.Logger
}

// New creates a session manager with the given options
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		codec:  BSONCodec{},
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.cookieMgr == nil {
		// Fail fast on misconfiguration: without a cookie manager the
		// identifier can never reach the client
		panic("session: cookie manager is required")
	}

	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}

	if m.log == nil {
		m.log = slog.Default()
	}

	return m
}

// Open resolves the request to a session. A missing cookie, an unknown or
// expired identifier, an unreadable store and a corrupt payload all resolve
// to a fresh session under a newly minted identifier; the presented
// identifier is never adopted, which keeps a stale id from being reclaimed
// by whoever still holds it. The only returnable error is failure of the
// random source behind identifier generation.
func (m *Manager) Open(ctx context.Context, r *http.Request) (*Session, error) {
	value, err := m.cookieMgr.Get(r, m.config.CookieName)
	if err != nil {
		return m.fresh()
	}

	id := strings.TrimPrefix(value, m.config.KeyPrefix)
	if id == "" {
		return m.fresh()
	}

	rec, err := m.store.FindLive(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.log.WarnContext(ctx, "session lookup failed, starting fresh",
				slog.String("session_id", id),
				slog.Any("error", err))
		}
		return m.fresh()
	}

	data, err := m.codec.Decode(rec.Payload)
	if err != nil {
		m.log.WarnContext(ctx, "session payload unreadable, starting fresh",
			slog.String("session_id", id),
			slog.Any("error", err))
		return m.fresh()
	}

	return &Session{
		ID:        rec.ID,
		Data:      data,
		Permanent: true,
		ExpiresAt: rec.ExpiresAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}

// Save persists the session and writes the outbound cookie. An empty
// mapping is terminal: the record is deleted and the cookie is cleared with
// the same attributes the set path uses, because a clearing cookie with
// mismatched attributes is silently ignored by compliant clients. Store
// failures are logged and dropped so the response never depends on session
// durability. The only returnable error is an unsupported value in the
// mapping, which is a defect in the handler that put it there.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, sess *Session) error {
	if sess == nil {
		return nil
	}

	if sess.staleID != "" {
		if err := m.store.Delete(ctx, sess.staleID); err != nil {
			m.log.ErrorContext(ctx, "superseded session record not deleted",
				slog.String("session_id", sess.staleID),
				slog.Any("error", err))
		}
		sess.staleID = ""
	}

	if sess.Len() == 0 {
		if err := m.store.Delete(ctx, sess.ID); err != nil {
			m.log.ErrorContext(ctx, "session record not deleted",
				slog.String("session_id", sess.ID),
				slog.Any("error", err))
		}
		m.cookieMgr.Clear(w, m.config.CookieName)
		return nil
	}

	payload, err := m.codec.Encode(sess.Data)
	if err != nil {
		return err
	}

	now := time.Now()
	sess.UpdatedAt = now
	sess.ExpiresAt = now.Add(m.config.Lifetime(sess.Permanent))

	rec := Record{
		ID:        sess.ID,
		Payload:   payload,
		ExpiresAt: sess.ExpiresAt,
		UpdatedAt: sess.UpdatedAt,
	}
	if err := m.store.Upsert(ctx, rec); err != nil {
		// Availability over durability: the cookie still goes out and the
		// next request falls back to a fresh session
		m.log.ErrorContext(ctx, "session record not persisted",
			slog.String("session_id", sess.ID),
			slog.Any("error", err))
	} else {
		sess.isNew = false
	}

	m.cookieMgr.Set(w, m.config.CookieName, m.config.KeyPrefix+sess.ID,
		cookie.WithExpires(sess.ExpiresAt))
	return nil
}

// Renew rotates the session identifier while keeping the mapping, the
// standard defense against session fixation when privilege changes at
// login. The superseded record is removed from the store on the next Save.
func (m *Manager) Renew(sess *Session) error {
	if sess == nil {
		return nil
	}

	id, err := newSID()
	if err != nil {
		return err
	}

	if !sess.isNew && sess.staleID == "" {
		sess.staleID = sess.ID
	}
	sess.ID = id
	return nil
}

// fresh mints a new empty session
func (m *Manager) fresh() (*Session, error) {
	id, err := newSID()
	if err != nil {
		return nil, err
	}
	return newSession(id), nil
}
