package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fxpilot/invoice_chat_app/internal/apperrors"
	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/core/services"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func euroCurrency() *domain.Currency {
	return &domain.Currency{
		CurrencyCode: "EUR",
		Name:         "Euro",
		Symbol:       "€",
		USDRate:      decimal.NewFromFloat(1.18),
		Precision:    2,
		Regions:      []string{"Germany", "France"},
	}
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Success() {
	ctx := context.Background()
	expected := euroCurrency()

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "EUR")

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal("EUR", currency.CurrencyCode)
	suite.Equal("€", currency.Symbol)
	suite.True(decimal.NewFromFloat(1.18).Equal(currency.USDRate))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()

	// USD is detectable but deliberately absent from the table.
	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "USD")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(nil, expectedErr).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "EUR")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Success() {
	ctx := context.Background()
	expected := []domain.Currency{*euroCurrency()}

	suite.mockRepo.On("ListCurrencies", ctx).Return(expected, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Empty() {
	ctx := context.Background()
	var none []domain.Currency

	suite.mockRepo.On("ListCurrencies", ctx).Return(none, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Empty(currencies)
	suite.NotNil(currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListRates_Success() {
	ctx := context.Background()
	table := []domain.Currency{
		*euroCurrency(),
		{CurrencyCode: "JPY", Name: "Japanese Yen", Symbol: "¥", USDRate: decimal.NewFromFloat(0.0067), Precision: 0},
	}

	suite.mockRepo.On("ListCurrencies", ctx).Return(table, nil).Once()

	rates, err := suite.service.ListRates(ctx)

	suite.Require().NoError(err)
	suite.Len(rates, 2)
	suite.True(decimal.NewFromFloat(1.18).Equal(rates["EUR"]))
	suite.True(decimal.NewFromFloat(0.0067).Equal(rates["JPY"]))
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
