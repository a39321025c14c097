package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fxpilot/invoice_chat_app/internal/apperrors"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/dto"
	"github.com/fxpilot/invoice_chat_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler runs the full processing pipeline over submitted invoices.
type invoiceHandler struct {
	analyzerService portssvc.InvoiceAnalyzerSvc
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(as portssvc.InvoiceAnalyzerSvc) *invoiceHandler {
	return &invoiceHandler{
		analyzerService: as,
	}
}

// registerInvoiceRoutes registers the invoice analysis endpoint.
func registerInvoiceRoutes(rg *gin.RouterGroup, analyzerService portssvc.InvoiceAnalyzerSvc) {
	h := newInvoiceHandler(analyzerService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("/analyze", h.analyzeInvoice)
	}
}

// analyzeInvoice godoc
// @Summary Analyze an invoice
// @Description Runs geographic routing, USD standardization, vendor verification and cross-regional duplicate detection over the invoice text, returning the decision with its audit trail. Invoices that raise no alert are recorded for future duplicate comparisons.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.AnalyzeInvoiceRequest true "Invoice to analyze"
// @Success 200 {object} domain.InvoiceAnalysis
// @Failure 400 {object} map[string]string "Invalid input or unsupported currency"
// @Failure 409 {object} map[string]string "Invoice ID already recorded"
// @Failure 500 {object} map[string]string "Failed to analyze invoice"
// @Router /invoices/analyze [post]
func (h *invoiceHandler) analyzeInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AnalyzeInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for analyzeInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	analysis, err := h.analyzerService.ProcessInvoice(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedCurrency) {
			logger.Warn("Invoice carries an unsupported currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "The invoice currency is not yet supported"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Invoice ID already recorded", slog.String("invoice_id", req.InvoiceID))
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Invoice '%s' has already been recorded", req.InvoiceID)})
		} else {
			logger.Error("Failed to analyze invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze invoice"})
		}
		return
	}

	logger.Info("Invoice analysis served",
		slog.String("invoice_id", analysis.InvoiceID),
		slog.String("recommendation", string(analysis.Decision.Recommendation)))
	c.JSON(http.StatusOK, analysis)
}
