package mongostore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/invoicekit/pkg/session"
)

func TestRecordDocumentLayout(t *testing.T) {
	expires := time.Date(2024, 3, 22, 10, 30, 0, 0, time.UTC)
	updated := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	payload, err := bson.Marshal(record{
		ID:        "0b391aa7-4f5a-4bd0-9d55-eeb9ae27bd1e",
		Data:      []byte{0x01, 0x02},
		Expires:   expires,
		UpdatedAt: updated,
	})
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(payload, &doc))

	assert.Equal(t, "0b391aa7-4f5a-4bd0-9d55-eeb9ae27bd1e", doc["_id"])
	assert.Contains(t, doc, "data")
	assert.Contains(t, doc, "expires")
	assert.Contains(t, doc, "updated_at")

	var back record
	require.NoError(t, bson.Unmarshal(payload, &back))
	assert.Equal(t, []byte{0x01, 0x02}, back.Data)
	assert.True(t, back.Expires.Equal(expires))
	assert.True(t, back.UpdatedAt.Equal(updated))
}

func TestLiveFilter(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	filter := liveFilter("sid-1", now)

	assert.Equal(t, "sid-1", filter["_id"])

	expires, ok := filter["expires"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, now, expires["$gt"])
}

func TestUpsertUpdate(t *testing.T) {
	rec := session.Record{
		ID:        "sid-1",
		Payload:   []byte("payload"),
		ExpiresAt: time.Date(2024, 3, 22, 10, 30, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	}

	update := upsertUpdate(rec)
	set, ok := update["$set"].(bson.M)
	require.True(t, ok)

	// The update must not touch _id: the filter owns identity, $set owns
	// the mutable fields, which is what makes the upsert an atomic
	// create-or-replace.
	assert.NotContains(t, set, "_id")
	assert.Equal(t, []byte("payload"), set["data"])
	assert.Equal(t, rec.ExpiresAt, set["expires"])
	assert.Equal(t, rec.UpdatedAt, set["updated_at"])
}
