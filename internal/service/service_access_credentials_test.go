package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-access-keeper/internal/logger"
	"github.com/MKhiriev/go-access-keeper/internal/mock"
	"github.com/MKhiriev/go-access-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockedCredentialsSvc(t *testing.T) (AccessService, *store.Storages, *mock.MockCredentialService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialService(ctrl)
	storages := store.NewStorages(logger.Nop())
	clock := newFakeClock()

	svc := NewAccessService(storages, credentials, testApp, logger.Nop(), WithClock(clock.Now))
	return svc, storages, credentials
}

func TestRegister_DerivationFailure(t *testing.T) {
	svc, storages, credentials := newMockedCredentialsSvc(t)
	ctx := context.Background()

	credentials.EXPECT().Derive("pw1").Return("", errors.New("entropy exhausted"))

	err := svc.Register(ctx, "alice", "pw1", "a@x.com")
	require.ErrorIs(t, err, ErrCredentialDerivation)

	_, err = storages.UserRepository.FindUserByUsername(ctx, "alice")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestRegister_StoresDerivedCredential(t *testing.T) {
	svc, storages, credentials := newMockedCredentialsSvc(t)
	ctx := context.Background()

	credentials.EXPECT().Derive("pw1").Return("argon2id$derived", nil)

	require.NoError(t, svc.Register(ctx, "alice", "pw1", "a@x.com"))

	user, err := storages.UserRepository.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "argon2id$derived", user.PasswordHash)
}

func TestRegister_DuplicateSkipsDerivation(t *testing.T) {
	svc, _, credentials := newMockedCredentialsSvc(t)
	ctx := context.Background()

	credentials.EXPECT().Derive(gomock.Any()).Return("argon2id$derived", nil).Times(1)

	require.NoError(t, svc.Register(ctx, "alice", "pw1", "a@x.com"))
	assert.ErrorIs(t, svc.Register(ctx, "alice", "pw2", "b@x.com"), ErrUsernameAlreadyExists)
}

func TestLogin_VerifiesAgainstStoredCredential(t *testing.T) {
	svc, _, credentials := newMockedCredentialsSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		credentials.EXPECT().Derive("pw1").Return("argon2id$derived", nil),
		credentials.EXPECT().Verify("pw1", "argon2id$derived").Return(true),
	)

	require.NoError(t, svc.Register(ctx, "alice", "pw1", "a@x.com"))
	_, err := svc.Login(ctx, "alice", "pw1")
	assert.NoError(t, err)
}
