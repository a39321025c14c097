package services_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fxpilot/invoice_chat_app/internal/apperrors"
	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/core/services"
)

type ConverterServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.ConverterSvc
}

func (suite *ConverterServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewConverterService(
		suite.mockRepo,
		services.WithConverterRandomSource(rand.NewPCG(1, 2)),
	)
}

func (suite *ConverterServiceTestSuite) detection(code, symbol, amount string) domain.DetectionResult {
	value, err := decimal.NewFromString(amount)
	suite.Require().NoError(err)
	return domain.DetectionResult{
		CurrencyCode: code,
		Symbol:       symbol,
		RawMatch:     symbol + amount,
		Amount:       value,
	}
}

func (suite *ConverterServiceTestSuite) TestConvertToUSD_Euro() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(euroCurrency(), nil).Once()

	result, err := suite.service.ConvertToUSD(ctx, suite.detection("EUR", "€", "1234.56"))

	suite.Require().NoError(err)
	suite.Equal("EUR", result.FromCurrency)
	suite.True(result.Performed)
	suite.Equal("1.18", result.Rate.String())
	suite.Equal("1456.78", result.USDAmount.String())
	suite.Equal("€1,234.56", result.OriginalFormatted)
	suite.Equal("$1,456.78", result.USDFormatted)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ConverterServiceTestSuite) TestConvertToUSD_RoundsHalfUp() {
	ctx := context.Background()
	parity := &domain.Currency{
		CurrencyCode: "EUR",
		Name:         "Euro",
		Symbol:       "€",
		USDRate:      decimal.NewFromInt(1),
		Precision:    2,
	}
	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(parity, nil).Twice()

	up, err := suite.service.ConvertToUSD(ctx, suite.detection("EUR", "€", "2.675"))
	suite.Require().NoError(err)
	suite.Equal("2.68", up.USDAmount.String())

	down, err := suite.service.ConvertToUSD(ctx, suite.detection("EUR", "€", "12.344"))
	suite.Require().NoError(err)
	suite.Equal("12.34", down.USDAmount.String())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ConverterServiceTestSuite) TestConvertToUSD_USDPassThrough() {
	ctx := context.Background()

	result, err := suite.service.ConvertToUSD(ctx, suite.detection("USD", "$", "999.99"))

	suite.Require().NoError(err)
	suite.False(result.Performed)
	suite.Equal("USD", result.FromCurrency)
	suite.Equal("1", result.Rate.String())
	suite.Equal("999.99", result.USDAmount.String())
	suite.Equal("$999.99", result.OriginalFormatted)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "FindCurrencyByCode", 0)
}

func (suite *ConverterServiceTestSuite) TestConvertToUSD_NoCurrencyDetected() {
	result, err := suite.service.ConvertToUSD(context.Background(), domain.DetectionResult{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNoCurrencyDetected)
}

func (suite *ConverterServiceTestSuite) TestConvertToUSD_UnsupportedCurrency() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "BTC").Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.ConvertToUSD(ctx, suite.detection("BTC", "₿", "1"))

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ConverterServiceTestSuite) TestConvertToUSD_NegativeAmount() {
	result, err := suite.service.ConvertToUSD(context.Background(), suite.detection("EUR", "€", "-5"))

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "FindCurrencyByCode", 0)
}

func (suite *ConverterServiceTestSuite) TestConvertToUSD_FlavorRanges() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(euroCurrency(), nil)

	for i := 0; i < 100; i++ {
		result, err := suite.service.ConvertToUSD(ctx, suite.detection("EUR", "€", "100"))
		suite.Require().NoError(err)

		suite.GreaterOrEqual(result.Confidence, 90)
		suite.LessOrEqual(result.Confidence, 99)
		suite.GreaterOrEqual(result.ProcessingSeconds, 0.5)
		suite.Less(result.ProcessingSeconds, 2.5)
	}
}

func (suite *ConverterServiceTestSuite) TestConvertToUSD_NumericallyIdempotent() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(euroCurrency(), nil).Twice()
	detection := suite.detection("EUR", "€", "1234.56")

	first, err := suite.service.ConvertToUSD(ctx, detection)
	suite.Require().NoError(err)
	second, err := suite.service.ConvertToUSD(ctx, detection)
	suite.Require().NoError(err)

	// Numeric outcome is stable; only the synthesized flavor may differ.
	suite.True(first.USDAmount.Equal(second.USDAmount))
	suite.True(first.Rate.Equal(second.Rate))
	suite.Equal(first.OriginalFormatted, second.OriginalFormatted)
	suite.Equal(first.USDFormatted, second.USDFormatted)
}

// TestDetectThenConvert covers the end-to-end property: the largest detected
// amount is the one converted.
func (suite *ConverterServiceTestSuite) TestDetectThenConvert() {
	ctx := context.Background()
	detector := services.NewDetectorService()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(euroCurrency(), nil).Once()

	detection := detector.DetectCurrencyAndAmount(ctx, "€1,234.56 and $999.99")
	result, err := suite.service.ConvertToUSD(ctx, detection)

	suite.Require().NoError(err)
	suite.Equal("EUR", result.FromCurrency)
	suite.Equal("1456.78", result.USDAmount.String())
}

func TestConverterService(t *testing.T) {
	suite.Run(t, new(ConverterServiceTestSuite))
}
