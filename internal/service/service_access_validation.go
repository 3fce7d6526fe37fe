package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-access-keeper/internal/logger"
	"github.com/MKhiriev/go-access-keeper/internal/validators"
	"github.com/MKhiriev/go-access-keeper/models"
)

// AccessValidationService rejects registrations with a blank username or
// email before they reach the wrapped AccessService. Validation failures
// match ErrInvalidDataProvided.
type AccessValidationService struct {
	inner     AccessService
	validator validators.Validator
}

func NewAccessValidationService() AccessServiceWrapper {
	return &AccessValidationService{
		validator: validators.NewAccessValidator(),
	}
}

func (v *AccessValidationService) Wrap(inner AccessService) AccessService {
	v.inner = inner
	return v
}

func (v *AccessValidationService) Register(ctx context.Context, username, password, email string) error {
	registration := models.Registration{Username: username, Password: password, Email: email}
	if err := v.validator.Validate(ctx, registration); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("username", username).Msg("registration rejected")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, username, password, email)
}

func (v *AccessValidationService) CreateGroup(ctx context.Context, name string) error {
	return v.inner.CreateGroup(ctx, name)
}

func (v *AccessValidationService) Login(ctx context.Context, username, password string) (models.Token, error) {
	return v.inner.Login(ctx, username, password)
}

func (v *AccessValidationService) Logout(ctx context.Context, token string) error {
	return v.inner.Logout(ctx, token)
}

func (v *AccessValidationService) ResetPassword(ctx context.Context, username, oldPassword, newPassword string) error {
	return v.inner.ResetPassword(ctx, username, oldPassword, newPassword)
}

func (v *AccessValidationService) AddUserToGroup(ctx context.Context, username, group string) error {
	return v.inner.AddUserToGroup(ctx, username, group)
}

func (v *AccessValidationService) CheckAccess(ctx context.Context, username, group string) bool {
	return v.inner.CheckAccess(ctx, username, group)
}

func (v *AccessValidationService) VerifyEmail(ctx context.Context, username string) error {
	return v.inner.VerifyEmail(ctx, username)
}

func (v *AccessValidationService) GetProfile(ctx context.Context, username string) (models.Profile, error) {
	return v.inner.GetProfile(ctx, username)
}

func (v *AccessValidationService) ResolveToken(ctx context.Context, token string) (models.Token, error) {
	return v.inner.ResolveToken(ctx, token)
}
