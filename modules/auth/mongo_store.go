package auth

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const usersCollection = "users"

// MongoUserStore reads account holders from the users collection. It only
// reads: account creation and approval stay with the operator tooling that
// seeds the collection.
type MongoUserStore struct {
	coll *mongo.Collection
}

var _ UserStore = (*MongoUserStore)(nil)

// NewMongoUserStore creates a user store on the given database handle.
func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{coll: db.Collection(usersCollection)}
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &u, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id bson.ObjectID) (*User, error) {
	var u User
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return &u, nil
}
