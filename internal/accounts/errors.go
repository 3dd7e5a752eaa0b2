package accounts

import "errors"

var (
	// ErrUsernameTaken is returned when the username exists for either
	// principal kind. Usernames share one namespace because login resolves
	// the role from the username alone.
	ErrUsernameTaken = errors.New("username already in use")

	// ErrNotFound is returned when login names an unknown username.
	ErrNotFound = errors.New("account not found")

	// ErrInvalidCredentials is returned when the account exists but the
	// password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation is returned for malformed registration payloads.
	ErrValidation = errors.New("invalid account input")
)
