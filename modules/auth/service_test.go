package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/invoicekit/modules/auth"
)

// fakeUserStore serves a fixed set of users from memory.
type fakeUserStore struct {
	byEmail map[string]*auth.User
	byID    map[bson.ObjectID]*auth.User
}

func newFakeUserStore(users ...*auth.User) *fakeUserStore {
	s := &fakeUserStore{
		byEmail: make(map[string]*auth.User),
		byID:    make(map[bson.ObjectID]*auth.User),
	}
	for _, u := range users {
		s.byEmail[u.Email] = u
		s.byID[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id bson.ObjectID) (*auth.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return u, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testUser builds an account holder with a real bcrypt hash. MinCost keeps
// the hashing out of the test runtime.
func testUser(t *testing.T, email, password string, approved bool) *auth.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &auth.User{
		ID:           bson.NewObjectID(),
		Username:     "testadmin",
		Email:        email,
		PasswordHash: hash,
		BusinessName: "Test Business",
		GSTNumber:    "00TEST00000T1Z5",
		IsApproved:   approved,
	}
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()
	user := testUser(t, "test@example.com", "Test123!@#", true)
	svc := auth.NewService(newFakeUserStore(user), nil, auth.WithLogger(discardLogger()))

	t.Run("valid credentials", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, "test@example.com", "Test123!@#")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "Test Business", got.BusinessName)
	})

	t.Run("email is normalized", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, "  TEST@Example.COM  ", "Test123!@#")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "test@example.com", "wrong")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@example.com", "Test123!@#")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "test@example.com", "")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("pending approval", func(t *testing.T) {
		pending := testUser(t, "pending@example.com", "Test123!@#", false)
		svc := auth.NewService(newFakeUserStore(pending), nil, auth.WithLogger(discardLogger()))

		_, err := svc.Authenticate(ctx, "pending@example.com", "Test123!@#")
		assert.ErrorIs(t, err, auth.ErrAccountNotApproved)
	})
}
