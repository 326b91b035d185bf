package redisstore

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeLayout(t *testing.T) {
	expires := time.Date(2024, 3, 22, 10, 30, 0, 0, time.UTC)
	updated := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	raw, err := json.Marshal(envelope{
		Data:      []byte("payload"),
		ExpiresAt: expires,
		UpdatedAt: updated,
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "data")
	assert.Contains(t, doc, "expires")
	assert.Contains(t, doc, "updated_at")

	var back envelope
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, []byte("payload"), back.Data)
	assert.True(t, back.ExpiresAt.Equal(expires))
	assert.True(t, back.UpdatedAt.Equal(updated))
}

func TestKeyNamespacing(t *testing.T) {
	s := New(nil)
	assert.Equal(t, "session:sid-1", s.key("sid-1"))

	s = New(nil, WithKeyPrefix("billing:sessions:"))
	assert.Equal(t, "billing:sessions:sid-1", s.key("sid-1"))
}
