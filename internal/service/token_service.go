package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/opentranslation/translation-service/config"
	"github.com/opentranslation/translation-service/internal/domain/dto"
)

// ClaimsWithJWT extends dto.Claims with JWT RegisteredClaims for token generation.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// TokenService provides stateless JWT operations. Tokens are HS256-signed and
// carry the client code as subject; there is no server-side token state.
type TokenService interface {
	// GenerateToken creates a signed JWT for a client code and returns it with its expiry.
	GenerateToken(clientCode string) (string, time.Time, error)
	// ValidateToken validates a token and returns its claims.
	ValidateToken(tokenString string) (*dto.Claims, error)
	// Valid reports whether the token is well-formed, correctly signed, and unexpired.
	Valid(tokenString string) bool
}

// TokenServiceImpl implements TokenService.
type TokenServiceImpl struct {
	secretKey []byte
	tokenTTL  time.Duration
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey string
	TokenTTL  time.Duration
}

// NewTokenConfigFromAuthConfig creates TokenConfig from config.AuthConfig.
func NewTokenConfigFromAuthConfig(authConfig config.AuthConfig) TokenConfig {
	return TokenConfig{
		SecretKey: authConfig.JWTSecretKey,
		TokenTTL:  authConfig.TokenTTL,
	}
}

// NewTokenService creates a new token service.
func NewTokenService(cfg TokenConfig) TokenService {
	return &TokenServiceImpl{
		secretKey: []byte(cfg.SecretKey),
		tokenTTL:  cfg.TokenTTL,
	}
}

// GenerateToken creates a signed JWT for a client code.
func (s *TokenServiceImpl) GenerateToken(clientCode string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)

	claims := &ClaimsWithJWT{
		Claims: dto.Claims{
			ClientCode: clientCode,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clientCode,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a token and returns its claims.
// Any failure (wrong signing method, bad signature, expired, malformed)
// collapses to ErrInvalidToken.
func (s *TokenServiceImpl) ValidateToken(tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claimsWithJWT, ok := token.Claims.(*ClaimsWithJWT); ok && token.Valid {
		return &claimsWithJWT.Claims, nil
	}

	return nil, ErrInvalidToken
}

// Valid reports whether the token passes validation.
func (s *TokenServiceImpl) Valid(tokenString string) bool {
	_, err := s.ValidateToken(tokenString)
	return err == nil
}
