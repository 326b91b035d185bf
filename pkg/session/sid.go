package session

import (
	"errors"

	"github.com/google/uuid"
)

// newSID mints a version 4 UUID in canonical textual form (36 characters).
// The identifier is the only session state the client ever holds; its 122
// random bits are what make the cookie value unguessable. There is no safe
// degraded mode when the random source fails, so the error is surfaced
// rather than retried.
func newSID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Join(ErrIdentifierGeneration, err)
	}
	return id.String(), nil
}
