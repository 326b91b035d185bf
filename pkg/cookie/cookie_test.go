package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/invoicekit/pkg/cookie"
)

func TestManager_Set(t *testing.T) {
	t.Parallel()

	t.Run("applies default attributes", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		w := httptest.NewRecorder()
		m.Set(w, "session_id", "session:abc")

		header := w.Header().Get("Set-Cookie")
		require.NotEmpty(t, header)
		assert.Contains(t, header, "session_id=session:abc")
		assert.Contains(t, header, "Path=/")
		assert.Contains(t, header, "HttpOnly")
		assert.Contains(t, header, "SameSite=Lax")
		assert.NotContains(t, header, "Secure")
	})

	t.Run("applies policy attributes verbatim", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(
			cookie.WithSecure(true),
			cookie.WithSameSite(http.SameSiteNoneMode),
			cookie.WithDomain("api.example.com"),
			cookie.WithPath("/v1"),
		)
		w := httptest.NewRecorder()
		m.Set(w, "session_id", "session:abc")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.True(t, c.Secure)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
		assert.Equal(t, "api.example.com", c.Domain)
		assert.Equal(t, "/v1", c.Path)
	})

	t.Run("per-call options override the policy once", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		expires := time.Now().Add(24 * time.Hour).UTC()

		w := httptest.NewRecorder()
		m.Set(w, "session_id", "v", cookie.WithExpires(expires))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.WithinDuration(t, expires, cookies[0].Expires, time.Second)

		// The policy itself is untouched.
		w2 := httptest.NewRecorder()
		m.Set(w2, "session_id", "v")
		assert.True(t, w2.Result().Cookies()[0].Expires.IsZero())
	})
}

func TestManager_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns the cookie value", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "session_id", Value: "session:abc"})

		val, err := m.Get(r, "session_id")
		require.NoError(t, err)
		assert.Equal(t, "session:abc", val)
	})

	t.Run("missing cookie yields ErrCookieNotFound", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		r := httptest.NewRequest("GET", "/", nil)

		_, err := m.Get(r, "session_id")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})
}

func TestManager_Clear(t *testing.T) {
	t.Parallel()

	t.Run("expires the cookie", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		w := httptest.NewRecorder()
		m.Clear(w, "session_id")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Empty(t, c.Value)
		assert.Negative(t, c.MaxAge)
		assert.True(t, c.Expires.Before(time.Now()))
	})

	t.Run("clear matches set attributes", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(
			cookie.WithSecure(true),
			cookie.WithSameSite(http.SameSiteNoneMode),
			cookie.WithDomain("api.example.com"),
			cookie.WithPath("/v1"),
		)

		wSet := httptest.NewRecorder()
		m.Set(wSet, "session_id", "v")
		wClear := httptest.NewRecorder()
		m.Clear(wClear, "session_id")

		set := wSet.Result().Cookies()[0]
		cleared := wClear.Result().Cookies()[0]
		assert.Equal(t, set.Path, cleared.Path)
		assert.Equal(t, set.Domain, cleared.Domain)
		assert.Equal(t, set.Secure, cleared.Secure)
		assert.Equal(t, set.HttpOnly, cleared.HttpOnly)
		assert.Equal(t, set.SameSite, cleared.SameSite)
	})
}
