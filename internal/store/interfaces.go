package store

import (
	"context"

	"github.com/MKhiriev/go-access-keeper/models"
)

// UserRepository keeps the users table, keyed by username with a secondary
// unique index on email.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) error
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
}

// TokenRepository keeps the active tokens table, keyed by token value.
type TokenRepository interface {
	SaveToken(ctx context.Context, token models.Token) error
	FindToken(ctx context.Context, token string) (models.Token, error)
	DeleteToken(ctx context.Context, token string) error
}

// GroupRepository keeps the groups table, keyed by group name.
type GroupRepository interface {
	CreateGroup(ctx context.Context, group models.Group) error
	FindGroup(ctx context.Context, name string) (models.Group, error)
	UpdateGroup(ctx context.Context, group models.Group) error
}
