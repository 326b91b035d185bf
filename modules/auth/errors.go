package auth

import "errors"

var (
	// ErrUserNotFound indicates no account exists for the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers unknown emails and wrong passwords
	// alike, so login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountNotApproved indicates valid credentials on an account
	// still waiting for operator approval.
	ErrAccountNotApproved = errors.New("account is pending approval")
)
