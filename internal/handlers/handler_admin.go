package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fxpilot/invoice_chat_app/internal/apperrors"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/dto"
	"github.com/fxpilot/invoice_chat_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler exposes the back-office surface: processing statistics, raised
// fraud alerts and the registry reset.
type adminHandler struct {
	statsService portssvc.StatsSvc
	fraudService portssvc.FraudDetectorSvc
}

// newAdminHandler creates a new adminHandler.
func newAdminHandler(ss portssvc.StatsSvc, fs portssvc.FraudDetectorSvc) *adminHandler {
	return &adminHandler{
		statsService: ss,
		fraudService: fs,
	}
}

// registerAdminRoutes registers the back-office routes. The caller applies
// the auth middleware on the group.
func registerAdminRoutes(rg *gin.RouterGroup, statsService portssvc.StatsSvc, fraudService portssvc.FraudDetectorSvc) {
	h := newAdminHandler(statsService, fraudService)

	admin := rg.Group("/admin")
	{
		admin.GET("/stats", h.getStats)
		admin.GET("/alerts", h.listAlerts)
		admin.DELETE("/registry", h.resetRegistry)
	}
}

// getStats godoc
// @Summary Get processing statistics
// @Description Returns the lifetime counters: invoices processed, frauds detected, duplicates prevented, savings, registry size and the supported regions and currencies.
// @Tags admin
// @Produce  json
// @Success 200 {object} domain.ProcessingStats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load statistics"
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *adminHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.statsService.GetStatistics(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load statistics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
		return
	}

	logger.Info("Statistics served", slog.Int64("invoices_processed", stats.InvoicesProcessed))
	c.JSON(http.StatusOK, stats)
}

// listAlerts godoc
// @Summary List fraud alerts
// @Description Returns stored fraud alerts newest first. Use nextToken from the response to page through older alerts.
// @Tags admin
// @Produce  json
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Cursor returned by the previous page"
// @Success 200 {object} dto.AlertListResponse
// @Failure 400 {object} map[string]string "Invalid paging parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list alerts"
// @Security BearerAuth
// @Router /admin/alerts [get]
func (h *adminHandler) listAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	alerts, nextToken, err := h.fraudService.ListAlerts(c.Request.Context(), limit, c.Query("nextToken"))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid alert paging token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nextToken"})
			return
		}
		logger.Error("Failed to list alerts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list alerts"})
		return
	}

	logger.Info("Alerts listed", slog.Int("count", len(alerts)))
	c.JSON(http.StatusOK, dto.AlertListResponse{Alerts: alerts, NextToken: nextToken})
}

// resetRegistry godoc
// @Summary Reset the invoice registry
// @Description Clears all recorded invoices and stored fraud alerts from the in-memory registry.
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.RegistryResetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to reset registry"
// @Security BearerAuth
// @Router /admin/registry [delete]
func (h *adminHandler) resetRegistry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoicesCleared, alertsCleared, err := h.fraudService.ResetRegistry(c.Request.Context())
	if err != nil {
		logger.Error("Failed to reset registry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset registry"})
		return
	}

	subject, _ := middleware.GetSubjectFromCtx(c.Request.Context())
	logger.Info("Registry reset",
		slog.String("subject", subject),
		slog.Int("invoices_cleared", invoicesCleared),
		slog.Int("alerts_cleared", alertsCleared))
	c.JSON(http.StatusOK, dto.RegistryResetResponse{
		InvoicesCleared: invoicesCleared,
		AlertsCleared:   alertsCleared,
	})
}
