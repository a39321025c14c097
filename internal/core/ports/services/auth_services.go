package services

import (
	"context"
	"time"
)

// TokenSvcFacade defines the interface for back-office token management.
type TokenSvcFacade interface {
	// IssueToken exchanges the configured service key for a short-lived HS256
	// access token. It returns the token and its expiry, or
	// apperrors.ErrUnauthorized when the key does not match.
	IssueToken(ctx context.Context, serviceKey string) (string, time.Time, error)
}
