package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-access-keeper/internal/logger"
	"github.com/MKhiriev/go-access-keeper/models"
)

// userRepository is the in-memory implementation of [UserRepository].
type userRepository struct {
	users   map[string]models.User
	byEmail map[string]string // email -> username

	logger *logger.Logger
}

// NewUserRepository constructs an empty [UserRepository].
func NewUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		users:   make(map[string]models.User),
		byEmail: make(map[string]string),
		logger:  logger,
	}
}

// CreateUser stores a new user.
//
// Error handling:
//   - email owned by any stored user → [ErrEmailAlreadyExists] (checked first).
//   - username already stored → [ErrLoginAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if _, taken := r.byEmail[user.Email]; taken {
		log.Debug().Str("email", user.Email).Msg("email already exists")
		return ErrEmailAlreadyExists
	}
	if _, taken := r.users[user.Username]; taken {
		log.Debug().Str("username", user.Username).Msg("username already exists")
		return ErrLoginAlreadyExists
	}

	r.users[user.Username] = user.Clone()
	r.byEmail[user.Email] = user.Username

	return nil
}

// FindUserByUsername returns a copy of the stored user or [ErrNoUserWasFound].
func (r *userRepository) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user.Clone(), nil
}

// FindUserByEmail returns a copy of the user owning email or [ErrNoUserWasFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	username, ok := r.byEmail[email]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return r.FindUserByUsername(ctx, username)
}

// UpdateUser replaces a stored user. Username and email are immutable; an
// update that changes the email is rejected so the email index stays valid.
func (r *userRepository) UpdateUser(_ context.Context, user models.User) error {
	stored, ok := r.users[user.Username]
	if !ok {
		return ErrNoUserWasFound
	}
	if stored.Email != user.Email {
		return fmt.Errorf("%w: email of %q cannot change", ErrEmailAlreadyExists, user.Username)
	}

	r.users[user.Username] = user.Clone()
	return nil
}
