package auth

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/invoicekit/pkg/session"
)

// Service verifies credentials against the user store and moves the
// authenticated identity in and out of the request session.
type Service struct {
	users    UserStore
	sessions *session.Manager
	log      *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the logger for authentication events.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// NewService creates an authentication service on the given user store and
// session manager.
func NewService(users UserStore, sessions *session.Manager, opts ...Option) *Service {
	s := &Service{
		users:    users,
		sessions: sessions,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Authenticate verifies email and password. Unknown emails and wrong
// passwords both come back as ErrInvalidCredentials; a valid pair on an
// account that has not been approved yet comes back as
// ErrAccountNotApproved.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsApproved {
		return nil, ErrAccountNotApproved
	}

	return user, nil
}
