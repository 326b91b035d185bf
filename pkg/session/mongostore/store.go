package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/invoicekit/pkg/session"
)

const defaultCollection = "sessions"

// record is the persisted document layout: the identifier doubles as the
// document key, expires backs the TTL index.
type record struct {
	ID        string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	Expires   time.Time `bson:"expires"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Store implements session.Store on a MongoDB collection.
type Store struct {
	coll *mongo.Collection
}

var _ session.Store = (*Store)(nil)

type config struct {
	collection string
}

// Option configures the store
type Option func(*config)

// WithCollection overrides the collection name (default: "sessions")
func WithCollection(name string) Option {
	return func(c *config) {
		c.collection = name
	}
}

// New creates a session record store on the given database.
func New(db *mongo.Database, opts ...Option) *Store {
	cfg := config{collection: defaultCollection}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Store{coll: db.Collection(cfg.collection)}
}

// EnsureIndexes creates the TTL index on the expires field so the server
// reaps expired records on its own (expireAfterSeconds 0 deletes at the
// stored timestamp). MongoDB-compatible engines without a TTL monitor can
// skip this and run DeleteExpired periodically instead; FindLive never
// depends on the reaper.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	return nil
}

// FindLive returns the record for id if it exists and has not expired. The
// expiry filter runs server-side, so a record past its expiry never leaves
// the database even before the TTL reaper catches up with it.
func (s *Store) FindLive(ctx context.Context, id string) (*session.Record, error) {
	var doc record
	err := s.coll.FindOne(ctx, liveFilter(id, time.Now())).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, session.ErrNotFound
		}
		return nil, errors.Join(session.ErrStoreUnavailable, err)
	}

	return &session.Record{
		ID:        doc.ID,
		Payload:   doc.Data,
		ExpiresAt: doc.Expires,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

// Upsert creates or replaces the record for rec.ID in one atomic write.
func (s *Store) Upsert(ctx context.Context, rec session.Record) error {
	if rec.ID == "" {
		return session.ErrInvalidRecord
	}

	_, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": rec.ID},
		upsertUpdate(rec),
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	return nil
}

// Delete removes the record. Deleting a missing id is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Join(session.ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteExpired removes every record whose expiry has passed. On stock
// MongoDB the TTL index does this on its own; the explicit sweep serves
// deployments where the TTL monitor is absent or lagging.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{"expires": bson.M{"$lte": time.Now().UTC()}})
	if err != nil {
		return 0, errors.Join(session.ErrStoreUnavailable, err)
	}
	return res.DeletedCount, nil
}

func liveFilter(id string, now time.Time) bson.M {
	return bson.M{
		"_id":     id,
		"expires": bson.M{"$gt": now.UTC()},
	}
}

func upsertUpdate(rec session.Record) bson.M {
	return bson.M{"$set": bson.M{
		"data":       rec.Payload,
		"expires":    rec.ExpiresAt.UTC(),
		"updated_at": rec.UpdatedAt.UTC(),
	}}
}
