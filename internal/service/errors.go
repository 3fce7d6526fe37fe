package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")

	ErrAccountLocked      = errors.New("account is locked")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("old password does not match")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token is expired")

	ErrGroupAlreadyExists = errors.New("group already exists")
	ErrGroupNotFound      = errors.New("group not found")
	ErrAlreadyMember      = errors.New("user already in group")

	ErrCredentialDerivation = errors.New("credential derivation failed")
)

// ErrAccountLockedNow is returned by the failed login that triggers a
// lockout. It matches ErrAccountLocked.
var ErrAccountLockedNow = fmt.Errorf("%w: too many failed attempts", ErrAccountLocked)
