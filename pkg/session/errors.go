package session

import "errors"

var (
	// ErrNotFound indicates no live record exists for the identifier.
	// Expired records surface as this error regardless of physical deletion.
	ErrNotFound = errors.New("session.not_found")

	// ErrIdentifierGeneration indicates the random source failed while
	// minting a session identifier
	ErrIdentifierGeneration = errors.New("session.identifier_generation_failed")

	// ErrUnsupportedType indicates a session value outside the codec's
	// supported type set
	ErrUnsupportedType = errors.New("session.unsupported_type")

	// ErrCorruptPayload indicates stored bytes the codec cannot decode
	ErrCorruptPayload = errors.New("session.corrupt_payload")

	// ErrStoreUnavailable wraps database failures reported by record stores
	ErrStoreUnavailable = errors.New("session.store_unavailable")

	// ErrInvalidRecord indicates a record without an identifier
	ErrInvalidRecord = errors.New("session.invalid_record")
)
