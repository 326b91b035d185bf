package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/invoicekit/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestUserID(t *testing.T) {
	attr := logger.UserID("123")
	require.Equal(t, "user_id", attr.Key)
	assert.Equal(t, "123", attr.Value.Any())

	empty := logger.UserID(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestSessionID(t *testing.T) {
	attr := logger.SessionID("0b391aa7-4f5a-4bd0-9d55-eeb9ae27bd1e")
	require.Equal(t, "session_id", attr.Key)
	assert.Equal(t, "0b391aa7-4f5a-4bd0-9d55-eeb9ae27bd1e", attr.Value.Any())
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(3 * time.Second)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, 3*time.Second, attr.Value.Any())
}

func TestComponent(t *testing.T) {
	attr := logger.Component("session-sweep")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "session-sweep", attr.Value.Any())
}
