// Package session is a server-side session store for web applications that
// keep their frontend on a separate origin. Session state lives in a shared
// database record keyed by an opaque identifier; the client holds only the
// identifier, delivered through a single cookie. Nothing about the session
// payload ever crosses the wire.
//
// The package is storage-agnostic: any datastore satisfying the Store
// interface can hold the records. A concurrent in-memory implementation
// ships in this package; MongoDB (the canonical deployment), Redis and
// PostgreSQL implementations live in the mongostore, redisstore and pgstore
// subpackages.
//
// # Architecture
//
// A Manager orchestrates one Open/Save pair per request. Open turns the
// inbound cookie into a mutable mapping; Save encodes the mapping, upserts
// the record with a refreshed expiry and writes the outbound cookie with
// the attributes the cookie.Manager policy dictates. An empty mapping is
// terminal: its record is deleted and the cookie cleared.
//
//	┌────────┐  session_id cookie  ┌──────────────┐
//	│ Client │ ──────────────────► │    Manager   │
//	└────────┘                     │  Open / Save │
//	       ▲                       └──────────────┘
//	       │ Set-Cookie               │        │
//	       └──────────────────────────┘        │ encode / decode (BSON)
//	                                           ▼
//	                               ┌──────────────────────┐
//	                               │        Store         │
//	                               │ mongo, redis, pg, mem│
//	                               └──────────────────────┘
//
// Failure handling is deliberately one-sided: a session subsystem outage
// must degrade to "no session" (users re-authenticate), never to a failed
// response. Reads fail open to a fresh session, writes are logged and
// dropped.
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/invoicekit/pkg/cookie"
//	    "github.com/dmitrymomot/invoicekit/pkg/session"
//	)
//
//	cookieMgr := cookie.New(cookie.WithSecure(true), cookie.WithSameSite(http.SameSiteNoneMode))
//	manager := session.New(
//	    session.WithCookieManager(cookieMgr),
//	    session.WithStore(store), // defaults to in-memory
//	)
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
//	    sess := session.MustFromContext(r.Context())
//	    manager.Renew(sess) // rotate the identifier on privilege change
//	    sess.Set("user_id", userID)
//	})
//
//	http.ListenAndServe(":8080", manager.Middleware(mux))
//
// Outside the middleware the Open/Save pair can be driven directly:
//
//	sess, err := manager.Open(r.Context(), r)
//	sess.Set("user_id", userID)
//	err = manager.Save(r.Context(), w, sess) // before writing the response body
//
// # Configuration
//
// Cookie name, key prefix and the two lifetimes (default and permanent) are
// exposed via Option functions or a Config struct populated from
// environment variables through NewFromConfig. Cookie attributes belong to
// the cookie.Manager and are applied verbatim; cross-origin deployments
// configure Secure plus SameSite=None there, and this package never
// second-guesses it.
//
// # Error Handling
//
// Common error values returned by the package:
//
//   - ErrNotFound               – no live record for the identifier
//   - ErrCorruptPayload         – stored bytes the codec cannot decode
//   - ErrUnsupportedType        – a mapping value outside the codec's type set
//   - ErrIdentifierGeneration   – the random source failed; not recoverable
//
// Only ErrUnsupportedType and ErrIdentifierGeneration ever reach callers of
// Open/Save; the rest are contained by the fail-open path.
package session
