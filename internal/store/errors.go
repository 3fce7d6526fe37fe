package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when a user with the same username
	// is already stored.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrEmailAlreadyExists is returned when another user already owns the
	// email address.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup matches no user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTokenNotFound is returned when a token is not in the tokens table.
	ErrTokenNotFound = errors.New("token was not found")

	// ErrGroupAlreadyExists is returned when a group with the same name is
	// already stored.
	ErrGroupAlreadyExists = errors.New("group already exists")

	// ErrGroupNotFound is returned when a lookup matches no group.
	ErrGroupNotFound = errors.New("group was not found")
)
