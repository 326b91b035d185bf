// Package cookie holds an HTTP cookie attribute policy and applies it
// consistently to every cookie it writes or clears.
//
// # Overview
//
// The `Manager` type is the entry point. It is initialised once with the
// deployment's cookie `Options` (domain, path, Secure, HttpOnly, SameSite)
// and then applies them verbatim on every write. Clearing goes through the
// same policy, which is what makes removal reliable: a Set-Cookie that
// expires a cookie is honored by browsers only when its Domain and Path
// match the original, so set and clear must never be allowed to drift
// apart.
//
// Once created you can:
//
//   • Set(), Get() – write and read cookie values
//   • Clear() – expire a cookie with policy-matching attributes
//
// # Usage
//
//	import "github.com/dmitrymomot/invoicekit/pkg/cookie"
//
//	// cross-origin frontend: Secure + SameSite=None or browsers drop the cookie
//	man := cookie.New(
//	    cookie.WithSecure(true),
//	    cookie.WithSameSite(http.SameSiteNoneMode),
//	)
//
//	http.HandleFunc("/set", func(w http.ResponseWriter, r *http.Request) {
//	    man.Set(w, "session_id", "session:0b391aa7-...", cookie.WithExpires(expiresAt))
//	})
//
//	http.HandleFunc("/clear", func(w http.ResponseWriter, r *http.Request) {
//	    man.Clear(w, "session_id")
//	})
//
// # Configuration
//
// The `Config` struct allows the manager to be constructed from environment
// variables via github.com/caarlos0/env; `SameSite` accepts the textual
// forms "default", "lax", "strict" and "none".
//
//	cfg := cookie.DefaultConfig()
//	_ = env.Parse(&cfg)
//	man := cookie.NewFromConfig(cfg)
//
// # Error Handling
//
// Reads return `ErrCookieNotFound` when the request carries no such cookie;
// malformed SameSite configuration surfaces as `ErrInvalidSameSite`. Both
// work with `errors.Is`.
//
// # See Also
//
//   • net/http – underlying cookie implementation.
package cookie
