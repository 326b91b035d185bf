package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/invoicekit/pkg/cookie"
)

func TestSameSite_UnmarshalText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want http.SameSite
	}{
		{"lax", http.SameSiteLaxMode},
		{"Lax", http.SameSiteLaxMode},
		{"", http.SameSiteLaxMode},
		{"strict", http.SameSiteStrictMode},
		{"none", http.SameSiteNoneMode},
		{"NONE", http.SameSiteNoneMode},
		{"default", http.SameSiteDefaultMode},
		{" lax ", http.SameSiteLaxMode},
	}

	for _, tc := range cases {
		var s cookie.SameSite
		require.NoError(t, s.UnmarshalText([]byte(tc.in)), "input %q", tc.in)
		assert.Equal(t, tc.want, http.SameSite(s), "input %q", tc.in)
	}

	var s cookie.SameSite
	err := s.UnmarshalText([]byte("sideways"))
	assert.ErrorIs(t, err, cookie.ErrInvalidSameSite)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("cross-origin policy", func(t *testing.T) {
		t.Parallel()

		m := cookie.NewFromConfig(cookie.Config{
			Path:     "/",
			Secure:   true,
			HttpOnly: true,
			SameSite: cookie.SameSite(http.SameSiteNoneMode),
		})

		w := httptest.NewRecorder()
		m.Set(w, "session_id", "v")

		c := w.Result().Cookies()[0]
		assert.True(t, c.Secure)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
	})

	t.Run("defaults fill unset fields", func(t *testing.T) {
		t.Parallel()

		m := cookie.NewFromConfig(cookie.Config{HttpOnly: true})

		w := httptest.NewRecorder()
		m.Set(w, "session_id", "v")

		c := w.Result().Cookies()[0]
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.False(t, c.Secure)
	})

	t.Run("http only can be disabled", func(t *testing.T) {
		t.Parallel()

		m := cookie.NewFromConfig(cookie.Config{HttpOnly: false})

		w := httptest.NewRecorder()
		m.Set(w, "readable", "v")

		assert.False(t, w.Result().Cookies()[0].HttpOnly)
	})
}
