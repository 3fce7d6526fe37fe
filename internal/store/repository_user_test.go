package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-access-keeper/internal/logger"
	"github.com/MKhiriev/go-access-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(username, email string) models.User {
	return models.User{
		Username:     username,
		PasswordHash: "argon2id$stub",
		Email:        email,
		Groups:       []string{},
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestCreateUser_Success(t *testing.T) {
	repo := NewUserRepository(logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, newTestUser("alice", "a@x.com")))

	found, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", found.Email)

	byEmail, err := repo.FindUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", byEmail.Username)
}

func TestCreateUser_Duplicates(t *testing.T) {
	repo := NewUserRepository(logger.Nop())
	ctx := context.Background()
	require.NoError(t, repo.CreateUser(ctx, newTestUser("alice", "a@x.com")))

	tests := []struct {
		name    string
		user    models.User
		wantErr error
	}{
		{name: "same email", user: newTestUser("bob", "a@x.com"), wantErr: ErrEmailAlreadyExists},
		{name: "same username", user: newTestUser("alice", "other@x.com"), wantErr: ErrLoginAlreadyExists},
		{name: "email checked before username", user: newTestUser("alice", "a@x.com"), wantErr: ErrEmailAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, repo.CreateUser(ctx, tt.user), tt.wantErr)
		})
	}

	_, err := repo.FindUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUser_NotFound(t *testing.T) {
	repo := NewUserRepository(logger.Nop())
	ctx := context.Background()

	_, err := repo.FindUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	_, err = repo.FindUserByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

// TestFindUser_ReturnsCopy verifies that mutating a returned user does not
// leak into the table.
func TestFindUser_ReturnsCopy(t *testing.T) {
	repo := NewUserRepository(logger.Nop())
	ctx := context.Background()
	require.NoError(t, repo.CreateUser(ctx, newTestUser("alice", "a@x.com")))

	found, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	found.Groups = append(found.Groups, "admins")
	found.EmailVerified = true

	again, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, again.Groups)
	assert.False(t, again.EmailVerified)
}

func TestUpdateUser(t *testing.T) {
	repo := NewUserRepository(logger.Nop())
	ctx := context.Background()
	require.NoError(t, repo.CreateUser(ctx, newTestUser("alice", "a@x.com")))

	user, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	user.FailedAttempts = 2
	require.NoError(t, repo.UpdateUser(ctx, user))

	updated, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, updated.FailedAttempts)
}

func TestUpdateUser_Errors(t *testing.T) {
	repo := NewUserRepository(logger.Nop())
	ctx := context.Background()
	require.NoError(t, repo.CreateUser(ctx, newTestUser("alice", "a@x.com")))

	assert.ErrorIs(t, repo.UpdateUser(ctx, newTestUser("ghost", "g@x.com")), ErrNoUserWasFound)
	assert.Error(t, repo.UpdateUser(ctx, newTestUser("alice", "changed@x.com")))
}
