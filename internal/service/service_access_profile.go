package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-access-keeper/internal/logger"
	"github.com/MKhiriev/go-access-keeper/models"
)

func (s *accessService) VerifyEmail(ctx context.Context, username string) error {
	log := logger.FromContext(ctx).With().Str("username", username).Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return mapUserStoreError(err)
	}

	user.EmailVerified = true
	if err = s.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Msg("failed to mark email as verified")
		return fmt.Errorf("failed to mark email as verified: %w", err)
	}

	log.Info().Msg("email verified")
	return nil
}

func (s *accessService) GetProfile(ctx context.Context, username string) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.Profile{}, mapUserStoreError(err)
	}

	return user.Profile(), nil
}
