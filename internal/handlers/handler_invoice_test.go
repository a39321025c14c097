package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	"github.com/fxpilot/invoice_chat_app/internal/core/services"
	"github.com/fxpilot/invoice_chat_app/internal/handlers"
	"github.com/fxpilot/invoice_chat_app/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// testInvoiceText is a complete invoice the fingerprinting patterns can latch
// onto: vendor, line item, amount, PO reference and delivery address.
const testInvoiceText = "Invoice #INV-2024-7701\nVendor: Microsoft\nItem: Office 365 Enterprise licenses\nTotal: €2,500.00\nPO: PO-2024-0099\nDelivery: 12 Alexanderplatz, Berlin"

// InvoiceHandlerTestSuite runs the full pipeline endpoint against real
// services; the registry is fresh for every test.
type InvoiceHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := newTestConfig()
	container := services.NewServiceContainer(cfg, memory.NewRepositoryProvider(), nil, nil)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *InvoiceHandlerTestSuite) analyze(body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/invoices/analyze", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *InvoiceHandlerTestSuite) analyzeInvoice(invoiceID, region string) *domain.InvoiceAnalysis {
	payload := map[string]string{
		"invoiceId":   invoiceID,
		"region":      region,
		"invoiceText": testInvoiceText,
	}
	body, err := json.Marshal(payload)
	suite.Require().NoError(err)

	w := suite.analyze(string(body))
	suite.Require().Equal(http.StatusOK, w.Code)

	var analysis domain.InvoiceAnalysis
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &analysis))
	return &analysis
}

// --- Test Cases ---

func (suite *InvoiceHandlerTestSuite) TestAnalyze_CleanInvoice() {
	analysis := suite.analyzeInvoice("INV-2024-7701", "Germany")

	suite.Equal("INV-2024-7701", analysis.InvoiceID)
	suite.False(analysis.Fraud.FraudDetected)
	suite.Equal(1, analysis.Fraud.RegionsAffected)

	suite.Equal("EUR", analysis.Conversion.FromCurrency)
	suite.True(analysis.Conversion.USDAmount.Equal(decimal.NewFromInt(2950)))
	suite.Equal("$2,950.00", analysis.Conversion.USDFormatted)

	suite.Equal(domain.VendorLegitimate, analysis.Vendor.Status)
	suite.Equal("Microsoft", analysis.Vendor.MatchedVendor)

	suite.NotEmpty(analysis.Decision.Recommendation)
	suite.NotEqual(domain.RecommendationBlock, analysis.Decision.Recommendation)

	suite.Require().Len(analysis.AuditTrail, 4)
	suite.Equal("geographic_routing", analysis.AuditTrail[0].Step)
	suite.Equal("currency_conversion", analysis.AuditTrail[1].Step)
	suite.Equal("vendor_verification", analysis.AuditTrail[2].Step)
	suite.Equal("fraud_detection", analysis.AuditTrail[3].Step)

	suite.True(analysis.BusinessImpact.CostSavingsUSD.GreaterThanOrEqual(decimal.Zero))
}

func (suite *InvoiceHandlerTestSuite) TestAnalyze_GeneratesInvoiceID() {
	analysis := suite.analyzeInvoice("", "")

	suite.NotEmpty(analysis.InvoiceID)
}

func (suite *InvoiceHandlerTestSuite) TestAnalyze_DuplicateAcrossRegions() {
	first := suite.analyzeInvoice("INV-A", "Germany")
	suite.False(first.Fraud.FraudDetected)

	second := suite.analyzeInvoice("INV-B", "UK")

	suite.True(second.Fraud.FraudDetected)
	suite.Equal(domain.FraudTypeDuplicate, second.Fraud.FraudType)
	suite.InDelta(0.99, second.Fraud.Confidence, 0.0001)
	suite.Equal(2, second.Fraud.RegionsAffected)
	suite.Require().Len(second.Fraud.Matches, 1)
	suite.Equal("INV-A", second.Fraud.Matches[0].InvoiceID)
	suite.Equal("Germany", second.Fraud.Matches[0].Region)
	// Identical fingerprints score the full component weight sum.
	suite.InDelta(1.3, second.Fraud.Matches[0].Similarity, 0.0001)
	suite.True(second.Fraud.PotentialLoss.Equal(decimal.NewFromInt(2950)))

	suite.Equal(domain.RecommendationBlock, second.Decision.Recommendation)
	suite.Equal("High fraud risk detected", second.Decision.Reason)
}

func (suite *InvoiceHandlerTestSuite) TestAnalyze_SameRegionIsNotADuplicate() {
	suite.analyzeInvoice("INV-A", "Germany")
	second := suite.analyzeInvoice("INV-B", "Germany")

	suite.False(second.Fraud.FraudDetected)
}

func (suite *InvoiceHandlerTestSuite) TestAnalyze_ResubmittedInvoiceIDConflicts() {
	suite.analyzeInvoice("INV-A", "Germany")

	// Same region, so the resubmission is no cross-regional duplicate; the
	// registry still refuses the reused ID.
	payload, err := json.Marshal(map[string]string{
		"invoiceId":   "INV-A",
		"region":      "Germany",
		"invoiceText": testInvoiceText,
	})
	suite.Require().NoError(err)

	w := suite.analyze(string(payload))

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "already been recorded")
}

func (suite *InvoiceHandlerTestSuite) TestAnalyze_MissingText() {
	w := suite.analyze(`{"region":"Germany"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Run Test Suite ---
func TestInvoiceHandler(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
