package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/core/services"
	"github.com/fxpilot/invoice_chat_app/internal/dto"
	"github.com/fxpilot/invoice_chat_app/internal/handlers"
	"github.com/fxpilot/invoice_chat_app/internal/platform/config"
	"github.com/fxpilot/invoice_chat_app/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ResponderService ---
type MockResponderService struct {
	mock.Mock
}

func (m *MockResponderService) Classify(ctx context.Context, message string) domain.Intent {
	args := m.Called(ctx, message)
	return args.Get(0).(domain.Intent)
}

func (m *MockResponderService) Respond(ctx context.Context, message string) (*domain.ChatResponse, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatResponse), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ResponderSvc = (*MockResponderService)(nil)

// newTestConfig returns a config suitable for handler tests. IsProduction
// keeps the swagger routes off the test router.
func newTestConfig() *config.Config {
	return &config.Config{
		Port:              "8080",
		IsProduction:      true,
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "fx-chat-test",
		AuthServiceKey:    "test-service-key",
		RateLimit:         "1000-M",
	}
}

// --- Test Suite ---
type ChatHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockResponder *MockResponderService
}

func (suite *ChatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockResponder = new(MockResponderService)

	cfg := newTestConfig()
	container := services.NewServiceContainer(cfg, memory.NewRepositoryProvider(), nil, nil)
	container.Responder = suite.mockResponder

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *ChatHandlerTestSuite) postChat(body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ChatHandlerTestSuite) TestPostChat_Success() {
	expected := &domain.ChatResponse{
		Intent: domain.IntentExchangeRateQuery,
		Reply:  "Here are the current exchange rates to USD.",
	}
	suite.mockResponder.On("Respond", mock.Anything, "what are your exchange rates?").
		Return(expected, nil).Once()

	w := suite.postChat(`{"message":"what are your exchange rates?"}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ChatResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.IntentExchangeRateQuery, resp.Intent)
	suite.Equal(expected.Reply, resp.Reply)
	suite.Nil(resp.Conversion)
	suite.Nil(resp.Analysis)
	suite.mockResponder.AssertExpectations(suite.T())
}

func (suite *ChatHandlerTestSuite) TestPostChat_CarriesConversionPayload() {
	expected := &domain.ChatResponse{
		Intent: domain.IntentInvoiceContent,
		Reply:  "I detected €1,250.00 and converted it to $1,475.00.",
		Conversion: &domain.ConversionResult{
			FromCurrency:      "EUR",
			OriginalAmount:    decimal.NewFromInt(1250),
			Rate:              decimal.NewFromFloat(1.18),
			USDAmount:         decimal.NewFromInt(1475),
			Performed:         true,
			OriginalFormatted: "€1,250.00",
			USDFormatted:      "$1,475.00",
			Confidence:        95,
			ProcessingSeconds: 1.2,
		},
	}
	suite.mockResponder.On("Respond", mock.Anything, "invoice total €1,250.00").
		Return(expected, nil).Once()

	w := suite.postChat(`{"message":"invoice total €1,250.00"}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ChatResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.IntentInvoiceContent, resp.Intent)
	suite.Require().NotNil(resp.Conversion)
	suite.Equal("EUR", resp.Conversion.FromCurrency)
	suite.True(resp.Conversion.USDAmount.Equal(decimal.NewFromInt(1475)))
	suite.True(resp.Conversion.Performed)
	suite.mockResponder.AssertExpectations(suite.T())
}

func (suite *ChatHandlerTestSuite) TestPostChat_InvalidBody() {
	w := suite.postChat(`{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockResponder.AssertNotCalled(suite.T(), "Respond")
}

func (suite *ChatHandlerTestSuite) TestPostChat_ServiceError() {
	suite.mockResponder.On("Respond", mock.Anything, "hello").
		Return(nil, errors.New("responder blew up")).Once()

	w := suite.postChat(`{"message":"hello"}`)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var body map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Failed to produce a reply", body["error"])
	suite.mockResponder.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestChatHandler(t *testing.T) {
	suite.Run(t, new(ChatHandlerTestSuite))
}
