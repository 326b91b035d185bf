package session_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/invoicekit/pkg/session"
)

func TestBSONCodec_RoundTrip(t *testing.T) {
	codec := session.BSONCodec{}

	t.Run("preserves supported values", func(t *testing.T) {
		userID := bson.NewObjectID()
		loginAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

		in := map[string]any{
			"user_id":   userID,
			"email":     "owner@example.com",
			"permanent": true,
			"attempts":  int64(3),
			"balance":   1999.50,
			"login_at":  loginAt,
			"note":      nil,
			"items":     []any{"invoice-1", int64(2), map[string]any{"qty": int64(5)}},
			"profile": map[string]any{
				"gstin":    "27AAPFU0939F1ZV",
				"verified": false,
			},
		}

		payload, err := codec.Encode(in)
		require.NoError(t, err)

		out, err := codec.Decode(payload)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("normalizes integer widths to int64", func(t *testing.T) {
		payload, err := codec.Encode(map[string]any{
			"a": 7,
			"b": int32(7),
			"c": uint16(7),
			"d": int8(-7),
		})
		require.NoError(t, err)

		out, err := codec.Decode(payload)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"a": int64(7),
			"b": int64(7),
			"c": int64(7),
			"d": int64(-7),
		}, out)
	})

	t.Run("normalizes float32 to float64", func(t *testing.T) {
		payload, err := codec.Encode(map[string]any{"rate": float32(0.5)})
		require.NoError(t, err)

		out, err := codec.Decode(payload)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"rate": 0.5}, out)
	})

	t.Run("normalizes times to UTC millisecond precision", func(t *testing.T) {
		ist := time.FixedZone("IST", 5*3600+1800)
		in := time.Date(2024, 3, 15, 16, 0, 0, 123456789, ist)

		payload, err := codec.Encode(map[string]any{"at": in})
		require.NoError(t, err)

		out, err := codec.Decode(payload)
		require.NoError(t, err)

		at, ok := out["at"].(time.Time)
		require.True(t, ok)
		assert.True(t, at.Equal(in.Truncate(time.Millisecond)))
		assert.Equal(t, time.UTC, at.Location())
	})

	t.Run("preserves empty containers", func(t *testing.T) {
		in := map[string]any{
			"list": []any{},
			"map":  map[string]any{},
		}

		payload, err := codec.Encode(in)
		require.NoError(t, err)

		out, err := codec.Decode(payload)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})
}

func TestBSONCodec_Encode(t *testing.T) {
	codec := session.BSONCodec{}

	t.Run("rejects unsupported values", func(t *testing.T) {
		type custom struct{ A int }

		_, err := codec.Encode(map[string]any{"v": custom{A: 1}})
		assert.ErrorIs(t, err, session.ErrUnsupportedType)

		_, err = codec.Encode(map[string]any{"ch": make(chan int)})
		assert.ErrorIs(t, err, session.ErrUnsupportedType)
	})

	t.Run("rejects unsupported values in nested containers", func(t *testing.T) {
		_, err := codec.Encode(map[string]any{
			"outer": []any{map[string]any{"f": func() {}}},
		})
		assert.ErrorIs(t, err, session.ErrUnsupportedType)
	})

	t.Run("rejects unsigned overflow", func(t *testing.T) {
		_, err := codec.Encode(map[string]any{"v": uint64(math.MaxUint64)})
		assert.ErrorIs(t, err, session.ErrUnsupportedType)

		_, err = codec.Encode(map[string]any{"v": uint64(math.MaxInt64)})
		assert.NoError(t, err)
	})
}

func TestBSONCodec_Decode(t *testing.T) {
	codec := session.BSONCodec{}

	t.Run("reports corrupt payloads", func(t *testing.T) {
		_, err := codec.Decode([]byte("definitely-not-bson"))
		assert.ErrorIs(t, err, session.ErrCorruptPayload)
	})

	t.Run("reports empty payloads as corrupt", func(t *testing.T) {
		_, err := codec.Decode(nil)
		assert.ErrorIs(t, err, session.ErrCorruptPayload)

		_, err = codec.Decode([]byte{})
		assert.ErrorIs(t, err, session.ErrCorruptPayload)
	})

	t.Run("reports truncated documents as corrupt", func(t *testing.T) {
		payload, err := codec.Encode(map[string]any{"user_id": "abc123"})
		require.NoError(t, err)

		_, err = codec.Decode(payload[:len(payload)-3])
		assert.ErrorIs(t, err, session.ErrCorruptPayload)
	})
}
