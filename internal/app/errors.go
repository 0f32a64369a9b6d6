package app

import "errors"

// Sentinel errors returned by the application core. The HTTP layer maps them
// to statuses; anything else is a 500.
var (
	// ErrEmailTaken reports a signup against an email that already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound reports a signin against an unknown email.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials reports a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound covers both rows that do not exist and rows owned by
	// someone else; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrScoreOutOfRange reports a rating score outside [1,5].
	ErrScoreOutOfRange = errors.New("score must be between 1 and 5")

	// ErrInvalidPage reports a negative reading position.
	ErrInvalidPage = errors.New("currentPage must not be negative")
)
