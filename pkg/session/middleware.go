package session

import (
	"context"
	"log/slog"
	"net/http"
)

// Middleware opens the request's session, exposes it through the request
// context and saves it back into the response. Because the identifier
// travels in a Set-Cookie header, the save must land before the first
// response byte; the wrapped ResponseWriter commits the session on the
// first WriteHeader or Write call, and a final commit after the handler
// returns covers handlers that produce no output at all.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.Open(r.Context(), r)
		if err != nil {
			m.log.ErrorContext(r.Context(), "session open failed",
				slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx := WithSession(r.Context(), sess)
		sw := &saveWriter{ResponseWriter: w, manager: m, session: sess, ctx: ctx}

		next.ServeHTTP(sw, r.WithContext(ctx))

		sw.commit()
	})
}

// saveWriter defers the session save until the response actually starts,
// so handlers can keep mutating the session up to their first write.
type saveWriter struct {
	http.ResponseWriter
	manager   *Manager
	session   *Session
	ctx       context.Context
	committed bool
}

func (sw *saveWriter) commit() {
	if sw.committed {
		return
	}
	sw.committed = true

	if err := sw.manager.Save(sw.ctx, sw.ResponseWriter, sw.session); err != nil {
		sw.manager.log.ErrorContext(sw.ctx, "session save failed",
			slog.Any("error", err))
	}
}

func (sw *saveWriter) WriteHeader(code int) {
	sw.commit()
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *saveWriter) Write(b []byte) (int, error) {
	sw.commit()
	return sw.ResponseWriter.Write(b)
}

// Unwrap supports http.ResponseController.
func (sw *saveWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}
