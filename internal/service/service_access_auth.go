package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-access-keeper/internal/logger"
	"github.com/MKhiriev/go-access-keeper/internal/store"
	"github.com/MKhiriev/go-access-keeper/models"
)

// Register creates a new user account. Input shape is checked by
// AccessValidationService; this method enforces uniqueness.
//
// The email is checked before the username, so a request that collides on
// both reports ErrEmailAlreadyExists. The password is stored only as a
// derived credential.
func (s *accessService) Register(ctx context.Context, username, password, email string) error {
	log := logger.FromContext(ctx).With().Str("username", username).Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userRepository.FindUserByEmail(ctx, email); err == nil {
		log.Debug().Msg("email is already registered")
		return ErrEmailAlreadyExists
	}
	if _, err := s.userRepository.FindUserByUsername(ctx, username); err == nil {
		log.Debug().Msg("username is already registered")
		return ErrUsernameAlreadyExists
	}

	credential, err := s.credentials.Derive(password)
	if err != nil {
		log.Err(err).Msg("credential derivation failed")
		return fmt.Errorf("%w: %w", ErrCredentialDerivation, err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: credential,
		Email:        email,
		Groups:       []string{},
		CreatedAt:    s.now(),
	}

	if err = s.userRepository.CreateUser(ctx, user); err != nil {
		log.Err(err).Msg("user creation ended with error")
		return mapUserStoreError(err)
	}

	log.Info().Msg("user registered")
	return nil
}

// Login checks the password and issues a session token.
//
// A locked account is rejected without consuming an attempt. A wrong
// password increments the failure counter; reaching the threshold locks the
// account for the lockout window and resets the counter.
func (s *accessService) Login(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx).With().Str("username", username).Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Debug().Err(err).Msg("login for unknown user")
		return models.Token{}, mapUserStoreError(err)
	}

	now := s.now()
	if user.IsLocked(now) {
		log.Warn().Time("locked_until", *user.LockedUntil).Msg("login attempt on locked account")
		return models.Token{}, ErrAccountLocked
	}

	if !s.credentials.Verify(password, user.PasswordHash) {
		user.FailedAttempts++

		lockTriggered := user.FailedAttempts >= s.lockoutThreshold
		if lockTriggered {
			lockedUntil := now.Add(s.lockoutWindow)
			user.LockedUntil = &lockedUntil
			user.FailedAttempts = 0
		}

		if err = s.userRepository.UpdateUser(ctx, user); err != nil {
			log.Err(err).Msg("failed to record failed login")
			return models.Token{}, fmt.Errorf("failed to record failed login: %w", err)
		}

		if lockTriggered {
			log.Warn().Time("locked_until", *user.LockedUntil).Msg("account locked after failed logins")
			return models.Token{}, ErrAccountLockedNow
		}

		log.Info().Int("failed_attempts", user.FailedAttempts).Msg("invalid credentials")
		return models.Token{}, ErrInvalidCredentials
	}

	if s.revokePreviousToken && user.Token != "" {
		if err = s.tokenRepository.DeleteToken(ctx, user.Token); err != nil && !errors.Is(err, store.ErrTokenNotFound) {
			log.Err(err).Msg("failed to revoke previous token")
			return models.Token{}, fmt.Errorf("failed to revoke previous token: %w", err)
		}
	}

	token, err := s.issueToken(ctx, username, now)
	if err != nil {
		log.Err(err).Msg("failed to issue token")
		return models.Token{}, err
	}

	user.Token = token.Token
	user.LastLogin = &now
	user.FailedAttempts = 0

	if err = s.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Msg("failed to store session on user")
		_ = s.tokenRepository.DeleteToken(ctx, token.Token)
		return models.Token{}, fmt.Errorf("failed to store session on user: %w", err)
	}

	log.Info().Time("expires_at", token.ExpiresAt).Msg("user logged in")
	return token, nil
}

// issueToken stores a fresh token for username issued at now. Values already
// present in the tokens table are never handed out again.
func (s *accessService) issueToken(ctx context.Context, username string, now time.Time) (models.Token, error) {
	value := s.tokens.Generate()
	for {
		if _, err := s.tokenRepository.FindToken(ctx, value); err != nil {
			break
		}
		value = s.tokens.Generate()
	}

	token := models.Token{
		Token:     value,
		Username:  username,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.tokenTTL),
	}

	if err := s.tokenRepository.SaveToken(ctx, token); err != nil {
		return models.Token{}, fmt.Errorf("failed to save token: %w", err)
	}

	return token, nil
}

// Logout removes the token. The owner's current token is cleared only when it
// still refers to this token, so an older session cannot end a newer one.
func (s *accessService) Logout(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.tokenRepository.FindToken(ctx, token)
	if err != nil {
		log.Debug().Err(err).Msg("logout with unknown token")
		return ErrInvalidToken
	}

	user, err := s.userRepository.FindUserByUsername(ctx, record.Username)
	if err == nil && user.Token == record.Token {
		user.Token = ""
		if err = s.userRepository.UpdateUser(ctx, user); err != nil {
			log.Err(err).Str("username", record.Username).Msg("failed to clear session on user")
			return fmt.Errorf("failed to clear session on user: %w", err)
		}
	}

	if err = s.tokenRepository.DeleteToken(ctx, record.Token); err != nil {
		log.Err(err).Msg("failed to delete token")
		return fmt.Errorf("failed to delete token: %w", err)
	}

	log.Info().Str("username", record.Username).Msg("user logged out")
	return nil
}

// ResetPassword replaces the stored credential when oldPassword matches.
// Issued tokens are left untouched.
func (s *accessService) ResetPassword(ctx context.Context, username, oldPassword, newPassword string) error {
	log := logger.FromContext(ctx).With().Str("username", username).Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Debug().Err(err).Msg("password reset for unknown user")
		return mapUserStoreError(err)
	}

	if !s.credentials.Verify(oldPassword, user.PasswordHash) {
		log.Info().Msg("old password does not match")
		return ErrPasswordMismatch
	}

	credential, err := s.credentials.Derive(newPassword)
	if err != nil {
		log.Err(err).Msg("credential derivation failed")
		return fmt.Errorf("%w: %w", ErrCredentialDerivation, err)
	}

	user.PasswordHash = credential
	if err = s.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Msg("failed to update credential")
		return fmt.Errorf("failed to update credential: %w", err)
	}

	log.Info().Msg("password updated")
	return nil
}

// ResolveToken returns the session a token belongs to. Expired tokens are
// rejected but kept in the table.
func (s *accessService) ResolveToken(ctx context.Context, token string) (models.Token, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.tokenRepository.FindToken(ctx, token)
	if err != nil {
		log.Debug().Err(err).Msg("unknown token")
		return models.Token{}, ErrInvalidToken
	}

	if record.IsExpired(s.now()) {
		log.Debug().Str("username", record.Username).Msg("token is expired")
		return models.Token{}, ErrTokenExpired
	}

	return record, nil
}

func mapUserStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailAlreadyExists
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return ErrUsernameAlreadyExists
	default:
		return err
	}
}
