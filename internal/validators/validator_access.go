package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-access-keeper/models"
)

// Registration fields that identify an account. The password is not
// validated: any string derives a credential.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
)

type AccessValidator struct {
}

func NewAccessValidator() Validator {
	return &AccessValidator{}
}

func (v *AccessValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(ctx, value, fields...)
	case *models.Registration:
		return v.validateRegistration(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccessValidator) validateRegistration(_ context.Context, r models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(r.Username) {
				return ErrEmptyUsername
			}
		case FieldEmail:
			if isBlank(r.Email) {
				return ErrEmptyEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
