// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-access-keeper/internal/config"
	"golang.org/x/crypto/argon2"
)

// credentialScheme prefixes every encoded credential.
const credentialScheme = "argon2id"

var errMalformedCredential = errors.New("malformed credential")

// credentialService is the private implementation of [CredentialService].
type credentialService struct {
	// Argon2id tuning parameters used for new credentials. Verification
	// always uses the parameters recorded in the credential itself.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
	saltLen      uint32
}

// NewCredentialService constructs a [CredentialService] from cfg.
//
// The defaults in [config.Default] follow OWASP (2024) guidance:
// 1 iteration, 64 MiB, 4 lanes, 32-byte key, 16-byte salt.
func NewCredentialService(cfg config.Credentials) CredentialService {
	return &credentialService{
		argonTime:    cfg.ArgonTime,
		argonMemory:  cfg.ArgonMemoryKiB,
		argonThreads: cfg.ArgonThreads,
		argonKeyLen:  cfg.KeyLength,
		saltLen:      cfg.SaltLength,
	}
}

// Derive implements [CredentialService]. The result has the form
//
//	argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<key>
//
// with salt and key in unpadded standard base64.
func (c *credentialService) Derive(password string) (string, error) {
	salt := make([]byte, c.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate credential salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, c.argonTime, c.argonMemory, c.argonThreads, c.argonKeyLen)

	return fmt.Sprintf("%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		credentialScheme,
		argon2.Version,
		c.argonMemory, c.argonTime, c.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [CredentialService].
func (c *credentialService) Verify(password, encoded string) bool {
	params, salt, key, err := decodeCredential(encoded)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, params.time, params.memory, params.threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(candidate, key) == 1
}

type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

func decodeCredential(encoded string) (argonParams, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != credentialScheme {
		return argonParams{}, nil, nil, errMalformedCredential
	}

	var version int
	if _, err := fmt.Sscanf(parts[1], "v=%d", &version); err != nil || version != argon2.Version {
		return argonParams{}, nil, nil, errMalformedCredential
	}

	var p argonParams
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return argonParams{}, nil, nil, errMalformedCredential
	}
	if p.memory == 0 || p.time == 0 || p.threads == 0 {
		return argonParams{}, nil, nil, errMalformedCredential
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return argonParams{}, nil, nil, errMalformedCredential
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(key) == 0 {
		return argonParams{}, nil, nil, errMalformedCredential
	}

	return p, salt, key, nil
}
