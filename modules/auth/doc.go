// Package auth is the authentication collaborator for the session layer:
// it verifies credentials against the users collection, writes the
// authenticated user's document id into the session mapping under
// SessionKeyUserID, and clears the mapping on logout. Apart from
// identifier rotation at login, the session lifecycle itself stays
// entirely with the pkg/session middleware.
//
// Registration, password reset and role management are out of scope; the
// users collection is seeded and approved by operator tooling.
package auth
