package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/fxpilot/invoice_chat_app/internal/apperrors"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/platform/config"
	"github.com/fxpilot/invoice_chat_app/internal/utils"
)

// tokenSubject identifies back-office tokens in the JWT sub claim.
const tokenSubject = "back-office"

// tokenService exchanges the shared service key for short-lived JWT access
// tokens guarding the admin endpoints.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// Ensure tokenService implements the TokenSvcFacade interface
var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// IssueToken validates the presented service key and returns a signed access
// token with its expiry.
func (s *tokenService) IssueToken(ctx context.Context, serviceKey string) (string, time.Time, error) {
	if s.cfg.AuthServiceKey == "" ||
		subtle.ConstantTimeCompare([]byte(serviceKey), []byte(s.cfg.AuthServiceKey)) != 1 {
		return "", time.Time{}, fmt.Errorf("%w: invalid service key", apperrors.ErrUnauthorized)
	}

	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(tokenSubject, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	s.LogInfo(ctx, "Issued back-office token", slog.Time("expires_at", expiryTime))
	return accessToken, expiryTime, nil
}
