package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fxpilot/invoice_chat_app/internal/apperrors"
	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/dto"
	"github.com/fxpilot/invoice_chat_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// detectionHandler exposes the detection and conversion pipeline directly,
// without the conversational wrapping.
type detectionHandler struct {
	detectorService  portssvc.DetectorSvc
	converterService portssvc.ConverterSvc
}

// newDetectionHandler creates a new detectionHandler.
func newDetectionHandler(ds portssvc.DetectorSvc, cs portssvc.ConverterSvc) *detectionHandler {
	return &detectionHandler{
		detectorService:  ds,
		converterService: cs,
	}
}

// registerDetectionRoutes registers the detect and convert endpoints.
func registerDetectionRoutes(rg *gin.RouterGroup, detectorService portssvc.DetectorSvc, converterService portssvc.ConverterSvc) {
	h := newDetectionHandler(detectorService, converterService)

	rg.POST("/detect", h.detect)
	rg.POST("/convert", h.convert)
}

// detect godoc
// @Summary Detect a currency amount in text
// @Description Scans free-form text for currency-symbol-prefixed amounts and returns the single largest match. Finding nothing is a normal outcome, not an error.
// @Tags detection
// @Accept  json
// @Produce  json
// @Param   text body dto.DetectRequest true "Text to scan"
// @Success 200 {object} dto.DetectionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /detect [post]
func (h *detectionHandler) detect(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for detect", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result := h.detectorService.DetectCurrencyAndAmount(c.Request.Context(), req.Text)

	logger.Info("Detection served",
		slog.Bool("detected", result.Detected()),
		slog.String("currency_code", result.CurrencyCode))
	c.JSON(http.StatusOK, dto.ToDetectionResponse(result))
}

// convert godoc
// @Summary Convert an amount to USD
// @Description Converts an explicit currency amount to USD using the static rate snapshot. USD passes through at rate 1 without a table lookup.
// @Tags detection
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Currency code and amount"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input or unsupported currency"
// @Failure 500 {object} map[string]string "Failed to convert"
// @Router /convert [post]
func (h *detectionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	detection := domain.DetectionResult{
		CurrencyCode: req.CurrencyCode,
		Amount:       req.Amount,
	}

	result, err := h.converterService.ConvertToUSD(c.Request.Context(), detection)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNoCurrencyDetected):
			logger.Warn("Conversion requested without a currency")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Specify a currency code to convert"})
		case errors.Is(err, apperrors.ErrUnsupportedCurrency):
			logger.Warn("Conversion requested for unsupported currency", slog.String("currency_code", req.CurrencyCode))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Currency " + req.CurrencyCode + " is not yet supported"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error converting amount", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to convert amount", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert"})
		}
		return
	}

	logger.Info("Conversion served",
		slog.String("from_currency", result.FromCurrency),
		slog.String("usd_amount", result.USDAmount.String()))
	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}
