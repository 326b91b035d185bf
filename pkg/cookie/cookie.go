package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Manager writes and reads cookies under a fixed attribute policy. One
// policy object serves both Set and Clear, which guarantees a clearing
// cookie always carries the same Domain and Path as the cookie it removes;
// browsers silently ignore removals whose attributes do not match.
type Manager struct {
	defaults Options
}

// New creates a cookie manager. The defaults are Path "/", HttpOnly and
// SameSite=Lax; options adjust the policy once, at construction.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	defaults = applyOptions(defaults, opts)

	return &Manager{defaults: defaults}
}

// Set writes a cookie with the manager's policy attributes. Per-call
// options override the policy for this cookie only.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) {
	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Expires:  options.Expires,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

// Get returns the named cookie's value from the request.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Clear expires the named cookie: empty value, negative MaxAge and an
// epoch Expires, with the attribute set the manager's Set applies.
func (m *Manager) Clear(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   m.defaults.Secure,
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
	})
}
