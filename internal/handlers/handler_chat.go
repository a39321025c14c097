package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/dto"
	"github.com/fxpilot/invoice_chat_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// chatHandler handles the widget's conversational endpoint.
type chatHandler struct {
	responderService portssvc.ResponderSvc
}

// newChatHandler creates a new chatHandler.
func newChatHandler(rs portssvc.ResponderSvc) *chatHandler {
	return &chatHandler{
		responderService: rs,
	}
}

// registerChatRoutes registers the chat endpoint.
func registerChatRoutes(rg *gin.RouterGroup, responderService portssvc.ResponderSvc) {
	h := newChatHandler(responderService)

	rg.POST("/chat", h.postChat)
}

// postChat godoc
// @Summary Send a message to the assistant
// @Description Classifies the message intent and returns the assistant reply. Messages carrying invoice content run the full detection, conversion and fraud pipeline and return its structured payload.
// @Tags chat
// @Accept  json
// @Produce  json
// @Param   message body dto.ChatRequest true "Widget message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to produce a reply"
// @Router /chat [post]
func (h *chatHandler) postChat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for chat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	response, err := h.responderService.Respond(c.Request.Context(), req.Message)
	if err != nil {
		logger.Error("Failed to produce chat reply", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to produce a reply"})
		return
	}

	logger.Info("Chat reply produced", slog.String("intent", string(response.Intent)))
	c.JSON(http.StatusOK, dto.ToChatResponse(response))
}
