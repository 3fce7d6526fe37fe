// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-access-keeper/internal/config"
	"github.com/MKhiriev/go-access-keeper/internal/crypto"
	"github.com/MKhiriev/go-access-keeper/internal/logger"
	"github.com/MKhiriev/go-access-keeper/internal/store"
	"github.com/MKhiriev/go-access-keeper/internal/utils"
)

// Clock returns the current instant. Lockout and token expiry are evaluated
// against it at the moment of use.
type Clock func() time.Time

// accessService is the concrete implementation of AccessService.
// It owns the users, tokens and groups tables of one manager instance.
type accessService struct {
	// mu serialises every operation so each read-modify-write across the
	// three tables is atomic.
	mu sync.Mutex

	userRepository  store.UserRepository
	tokenRepository store.TokenRepository
	groupRepository store.GroupRepository

	// credentials derives and verifies stored password credentials.
	credentials crypto.CredentialService

	// tokens produces session token values.
	tokens TokenGenerator

	now Clock

	// tokenTTL is the lifetime of a newly issued session token.
	tokenTTL time.Duration

	// lockoutThreshold is the number of consecutive failed logins that
	// locks the account.
	lockoutThreshold int

	// lockoutWindow is how long a triggered lockout lasts.
	lockoutWindow time.Duration

	// revokePreviousToken removes the user's earlier token on re-login.
	revokePreviousToken bool

	logger *logger.Logger
}

// Option customises an access service at construction time.
type Option func(*accessService)

// WithClock replaces the wall clock. Tests use it to move time forward.
func WithClock(clock Clock) Option {
	return func(s *accessService) {
		s.now = clock
	}
}

// WithTokenGenerator replaces the UUID token generator.
func WithTokenGenerator(generator TokenGenerator) Option {
	return func(s *accessService) {
		s.tokens = generator
	}
}

// NewAccessService constructs an AccessService over the given storages.
// Tables are never shared between instances created from different storages.
func NewAccessService(storages *store.Storages, credentials crypto.CredentialService, cfg config.App, logger *logger.Logger, opts ...Option) AccessService {
	s := &accessService{
		userRepository:      storages.UserRepository,
		tokenRepository:     storages.TokenRepository,
		groupRepository:     storages.GroupRepository,
		credentials:         credentials,
		tokens:              utils.NewUUIDGenerator(),
		now:                 time.Now,
		tokenTTL:            cfg.TokenTTL,
		lockoutThreshold:    cfg.LockoutThreshold,
		lockoutWindow:       cfg.LockoutWindow,
		revokePreviousToken: cfg.RevokePreviousToken,
		logger:              logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
