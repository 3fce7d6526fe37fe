package service

//go:generate mockgen -source=interfaces.go -destination=../mock/access_service_mock.go -package=mock -exclude_interfaces=AccessServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-access-keeper/models"
)

// AccessService is the session and access manager. Every failure is reported
// as one of the sentinel errors of this package; no method panics on bad
// input and none leaves the manager unusable.
type AccessService interface {
	// Register creates a user. The email must be unused by any user and the
	// username must be new.
	Register(ctx context.Context, username, password, email string) error

	// Login verifies the credentials and issues a new session token.
	// Repeated failures lock the account for the configured window.
	Login(ctx context.Context, username, password string) (models.Token, error)

	// Logout removes the token and clears it from its owner.
	Logout(ctx context.Context, token string) error

	// ResetPassword replaces the credential when oldPassword matches.
	// Issued tokens stay valid.
	ResetPassword(ctx context.Context, username, oldPassword, newPassword string) error

	// CreateGroup creates an empty group.
	CreateGroup(ctx context.Context, name string) error

	// AddUserToGroup grants membership, updating both the group and the user.
	AddUserToGroup(ctx context.Context, username, group string) error

	// CheckAccess reports whether username is a member of group. Unknown
	// users or groups yield false.
	CheckAccess(ctx context.Context, username, group string) bool

	// VerifyEmail marks the user's email as verified.
	VerifyEmail(ctx context.Context, username string) error

	// GetProfile returns the public projection of a user.
	GetProfile(ctx context.Context, username string) (models.Profile, error)

	// ResolveToken returns the session a token belongs to, rejecting unknown
	// and expired tokens.
	ResolveToken(ctx context.Context, token string) (models.Token, error)
}

// AccessServiceWrapper defines middleware composition for AccessService.
// Implementations wrap an existing AccessService to add behavior such as
// input validation.
type AccessServiceWrapper interface {
	Wrap(AccessService) AccessService
}

// TokenGenerator produces opaque session token values.
type TokenGenerator interface {
	Generate() string
}
