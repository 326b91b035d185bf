package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is an account holder as stored in the billing app's users
// collection.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Username     string        `bson:"username"`
	Email        string        `bson:"email"`
	PasswordHash []byte        `bson:"password"`
	BusinessName string        `bson:"business_name"`
	GSTNumber    string        `bson:"gst_number,omitempty"`
	IsApproved   bool          `bson:"is_approved"`
	CreatedAt    time.Time     `bson:"created_at,omitempty"`
}

// UserStore looks up account holders for credential verification and for
// resolving the user reference a session carries.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*User, error)
}
