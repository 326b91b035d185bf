// Package invoicekit is the server-side session layer for a multi-tenant
// GST billing backend: opaque identifiers in cookies, session state in the
// database, and a lifecycle that treats session persistence as strictly
// subordinate to serving the response.
//
// The layout follows one rule: pkg/ holds infrastructure that knows nothing
// about billing, modules/ holds collaborators that do.
//
//   - pkg/session – identifier generation, BSON payload codec, the record
//     store contract with MongoDB/Redis/PostgreSQL/in-memory
//     implementations, and the Manager that drives Open/Save around each
//     request. Start reading here.
//   - pkg/cookie – the cookie policy holder; set and clear always carry
//     identical attributes.
//   - pkg/mongo, pkg/redis, pkg/pg – client bootstrap, retry and
//     healthchecks for the supported session backends.
//   - pkg/config, pkg/logger, pkg/httpserver – environment configuration,
//     slog factory, and the graceful server shell.
//   - modules/auth – the authentication collaborator that populates the
//     session with the signed-in user's document id.
//
// Wiring a serving stack:
//
//	manager := session.New(
//		session.WithStore(mongostore.New(db)),
//		session.WithCookieManager(cookie.New()),
//		session.WithLogger(log),
//	)
//
//	r := chi.NewRouter()
//	r.Use(manager.Middleware)
//	r.Mount("/auth", auth.Router(authSvc))
//
// Handlers read and write session state through the mapping API
// (session.FromContext, Get, Set, Clear); loading, persisting, cookie
// emission and failure containment all happen in the middleware.
package invoicekit
