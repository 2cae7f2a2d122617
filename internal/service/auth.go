package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/opentranslation/translation-service/config"
	"github.com/opentranslation/translation-service/internal/domain/dto"
	"github.com/opentranslation/translation-service/internal/metrics"
)

var (
	// ErrInvalidClientCode is returned when the client code is not in the allow-list.
	ErrInvalidClientCode = errors.New("invalid client code")
	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthService provides authentication operations.
// Authentication is a client-code allow-list: known clients get a JWT,
// everything else is rejected. There are no users or passwords.
type AuthService interface {
	IssueToken(ctx context.Context, clientCode string) (*dto.TokenResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
}

// AuthServiceImpl implements AuthService.
type AuthServiceImpl struct {
	clientCodes  map[string]bool
	tokenService TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(authConfig config.AuthConfig) AuthService {
	tokenService := NewTokenService(NewTokenConfigFromAuthConfig(authConfig))
	return NewAuthServiceWithTokenService(authConfig.ClientCodes, tokenService)
}

// NewAuthServiceWithTokenService creates a new authentication service with an
// existing TokenService. This is useful for testing or when you want to share
// a TokenService instance.
func NewAuthServiceWithTokenService(clientCodes map[string]bool, tokenService TokenService) AuthService {
	return &AuthServiceImpl{
		clientCodes:  clientCodes,
		tokenService: tokenService,
	}
}

// IssueToken checks the client code against the allow-list and returns a
// signed JWT for known clients.
func (s *AuthServiceImpl) IssueToken(_ context.Context, clientCode string) (*dto.TokenResponse, error) {
	if !s.clientCodes[clientCode] {
		log.Warn().Str("client_code", clientCode).Msg("token requested for unknown client code")
		return nil, ErrInvalidClientCode
	}

	token, expiresAt, err := s.tokenService.GenerateToken(clientCode)
	if err != nil {
		return nil, err
	}

	metrics.RecordTokenIssued(clientCode)

	return &dto.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateToken validates a token and returns its claims.
func (s *AuthServiceImpl) ValidateToken(_ context.Context, tokenString string) (*dto.Claims, error) {
	return s.tokenService.ValidateToken(tokenString)
}
