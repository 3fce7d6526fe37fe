package store

import (
	"context"

	"github.com/MKhiriev/go-access-keeper/internal/logger"
	"github.com/MKhiriev/go-access-keeper/models"
)

// tokenRepository is the in-memory implementation of [TokenRepository].
// Expired tokens stay in the table until they are deleted explicitly.
type tokenRepository struct {
	tokens map[string]models.Token

	logger *logger.Logger
}

// NewTokenRepository constructs an empty [TokenRepository].
func NewTokenRepository(logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		tokens: make(map[string]models.Token),
		logger: logger,
	}
}

func (r *tokenRepository) SaveToken(_ context.Context, token models.Token) error {
	r.tokens[token.Token] = token
	return nil
}

func (r *tokenRepository) FindToken(_ context.Context, token string) (models.Token, error) {
	found, ok := r.tokens[token]
	if !ok {
		return models.Token{}, ErrTokenNotFound
	}

	return found, nil
}

func (r *tokenRepository) DeleteToken(_ context.Context, token string) error {
	if _, ok := r.tokens[token]; !ok {
		return ErrTokenNotFound
	}

	delete(r.tokens, token)
	return nil
}
