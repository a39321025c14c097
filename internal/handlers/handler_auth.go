package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/fxpilot/invoice_chat_app/internal/apperrors"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/dto"
	"github.com/fxpilot/invoice_chat_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	tokenService portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(ts portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{
		tokenService: ts,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the token exchange route with a strict rate
// limit so the shared key cannot be brute forced.
func registerAuthRoutes(rg *gin.Engine, tokenService portssvc.TokenSvcFacade) {
	h := NewAuthHandler(tokenService)

	// Define rate limit: 5 requests per minute
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/auth")
	{
		auth.POST("/token", limitMiddleware, h.IssueToken)
	}
}

// IssueToken godoc
// @Summary Exchange the service key for an access token
// @Description Validates the configured back-office service key and returns a short-lived bearer token for the admin endpoints.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.TokenRequest true "Service key"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	accessToken, expiresAt, err := h.tokenService.IssueToken(c.Request.Context(), req.ServiceKey)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Rejected token exchange with invalid service key")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid service key"})
			return
		}
		logger.Error("Failed to issue token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}
