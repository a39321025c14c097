package dto

import "time"

// TokenRequest exchanges the shared service key for an access token.
type TokenRequest struct {
	ServiceKey string `json:"serviceKey" binding:"required"`
}

// TokenResponse returns the minted access token for admin endpoints.
type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
