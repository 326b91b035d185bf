package session

import "time"

// Session is the per-client state mapping addressed by an opaque identifier.
// The identifier travels in a cookie; the mapping itself never leaves the
// server. Values placed in Data must belong to the codec's supported type
// set or Save will reject them.
type Session struct {
	ID        string
	Data      map[string]any
	Permanent bool
	ExpiresAt time.Time
	UpdatedAt time.Time

	// staleID holds the identifier of a persisted record superseded by
	// Renew, removed on the next Save.
	staleID string
	isNew   bool
}

// newSession creates a fresh, never-persisted session. Permanent defaults
// to true, matching the billing application's login flow where every
// session outlives the browser tab.
func newSession(id string) *Session {
	return &Session{
		ID:        id,
		Data:      make(map[string]any),
		Permanent: true,
		isNew:     true,
	}
}

// IsNew reports whether the session has been loaded from or persisted to
// the store yet.
func (s *Session) IsNew() bool {
	return s != nil && s.isNew
}

// Get retrieves a value from session data
func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.Data == nil {
		return nil, false
	}
	val, ok := s.Data[key]
	return val, ok
}

// GetString retrieves a string value from session data
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// GetInt retrieves an integer value from session data. Stored integers
// come back from the codec as int64; handlers may also set plain ints.
func (s *Session) GetInt(key string) (int64, bool) {
	val, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

// GetBool retrieves a bool value from session data
func (s *Session) GetBool(key string) (bool, bool) {
	val, ok := s.Get(key)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

// GetTime retrieves a time value from session data
func (s *Session) GetTime(key string) (time.Time, bool) {
	val, ok := s.Get(key)
	if !ok {
		return time.Time{}, false
	}
	t, ok := val.(time.Time)
	return t, ok
}

// Set stores a value in session data
func (s *Session) Set(key string, value any) {
	if s == nil {
		return
	}
	if s.Data == nil {
		s.Data = make(map[string]any)
	}
	s.Data[key] = value
}

// Delete removes a value from session data
func (s *Session) Delete(key string) {
	if s == nil || s.Data == nil {
		return
	}
	delete(s.Data, key)
}

// Clear removes all data from the session. A cleared session is deleted
// from the store and its cookie is expired on the next Save.
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.Data = make(map[string]any)
}

// Len reports the number of keys in session data.
func (s *Session) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Data)
}
