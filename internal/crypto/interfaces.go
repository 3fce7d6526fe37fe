package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_service_mock.go -package=mock

// CredentialService turns raw passwords into stored credentials and checks
// passwords against them. It knows nothing about users or sessions.
type CredentialService interface {
	// Derive returns a self-describing encoded credential for password.
	// Every call uses a fresh random salt, so equal passwords produce
	// different credentials.
	Derive(password string) (string, error)

	// Verify reports whether password matches the encoded credential.
	// A malformed credential never matches.
	Verify(password, encoded string) bool
}
