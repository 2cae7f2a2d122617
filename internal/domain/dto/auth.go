// Package dto defines Data Transfer Objects for authentication.
package dto

import "time"

// TokenRequest represents a token issuance request.
// The client code may come from the clientCode query parameter or the JSON body.
//
// @Description Request to issue a JWT for a known client
// @Example {"client_code": "CLIENT_ABC"}
type TokenRequest struct {
	// ClientCode identifies the calling client application.
	ClientCode string `json:"client_code" example:"CLIENT_ABC"`
} // @name TokenRequest

// TokenResponse represents the JSON response body for the token endpoint.
//
// @Description Issued JWT and its expiry
// @Example {"token": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...", "expires_at": "2026-01-29T10:00:00Z"}
type TokenResponse struct {
	// Token is the signed JWT.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// ExpiresAt is the token expiry time.
	ExpiresAt time.Time `json:"expires_at" example:"2026-01-29T10:00:00Z"`
} // @name TokenResponse

// Claims represents JWT claims (kept here to avoid import cycles).
type Claims struct {
	ClientCode string `json:"client_code"`
}

// Validate performs custom validation on the token request.
func (r *TokenRequest) Validate() error {
	if r.ClientCode == "" {
		return &ValidationError{
			Field:   "client_code",
			Message: "client code is required",
		}
	}
	return nil
}
