package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the merged
// configuration cannot drive the access manager.
var (
	// ErrInvalidAppConfigs indicates an unusable session or lockout policy
	// (for example, a non-positive token lifetime or lockout threshold).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCredentialsConfigs indicates Argon2id parameters that would
	// produce a weak or empty credential.
	ErrInvalidCredentialsConfigs = errors.New("invalid credentials configuration")
)
