package services_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/core/services"
	"github.com/fxpilot/invoice_chat_app/internal/repositories/memory"
)

// ResponderServiceTestSuite drives the responder over the real pipeline with
// the in-memory repositories, pinning every random source.
type ResponderServiceTestSuite struct {
	suite.Suite
	service portssvc.ResponderSvc
	stats   portssvc.StatsSvc
}

func (suite *ResponderServiceTestSuite) SetupTest() {
	repos := memory.NewRepositoryProvider()

	detector := services.NewDetectorService()
	converter := services.NewConverterService(repos.CurrencyRepo,
		services.WithConverterRandomSource(rand.NewPCG(3, 4)))
	routing := services.NewRoutingService(detector)
	vendor := services.NewVendorService()
	fraud := services.NewFraudDetectorService(repos.RegistryRepo)
	suite.stats = services.NewStatsService(repos.RegistryRepo, routing)
	analyzer := services.NewInvoiceAnalyzerService(routing, detector, converter, vendor, fraud, suite.stats)

	suite.service = services.NewResponderService(
		detector,
		analyzer,
		services.NewCurrencyService(repos.CurrencyRepo),
		suite.stats,
		services.WithResponderRandomSource(rand.NewPCG(5, 6)),
	)
}

func (suite *ResponderServiceTestSuite) TestClassify_PriorityOrder() {
	testCases := []struct {
		name    string
		message string
		intent  domain.Intent
	}{
		{"currency symbol", "Invoice total: €500", domain.IntentInvoiceContent},
		{"whole word amount", "What is the amount due?", domain.IntentInvoiceContent},
		{"currency code beats rates", "USD rates today", domain.IntentInvoiceContent},
		{"rates query", "What are today's rates?", domain.IntentExchangeRateQuery},
		{"exchange rate query", "tell me the exchange rate", domain.IntentExchangeRateQuery},
		{"business benefit", "what business benefits do I get?", domain.IntentBusinessBenefitQuery},
		{"savings", "how much savings so far", domain.IntentBusinessBenefitQuery},
		{"statistics", "show statistics", domain.IntentStatisticsQuery},
		{"stats", "stats please", domain.IntentStatisticsQuery},
		{"help", "help me out", domain.IntentHelpQuery},
		{"default", "hello there", domain.IntentDefault},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.Equal(tc.intent, suite.service.Classify(context.Background(), tc.message))
		})
	}
}

func (suite *ResponderServiceTestSuite) TestRespond_Help() {
	response, err := suite.service.Respond(context.Background(), "help")

	suite.Require().NoError(err)
	suite.Equal(domain.IntentHelpQuery, response.Intent)
	suite.NotEmpty(response.Reply)
	suite.Nil(response.Conversion)
	suite.Nil(response.Analysis)
}

func (suite *ResponderServiceTestSuite) TestRespond_DefaultRotatesFillers() {
	ctx := context.Background()
	replies := map[string]struct{}{}

	for i := 0; i < 50; i++ {
		response, err := suite.service.Respond(ctx, "hello there")
		suite.Require().NoError(err)
		suite.Equal(domain.IntentDefault, response.Intent)
		suite.NotEmpty(response.Reply)
		replies[response.Reply] = struct{}{}
	}

	suite.Greater(len(replies), 1)
}

func (suite *ResponderServiceTestSuite) TestRespond_Rates() {
	response, err := suite.service.Respond(context.Background(), "What are today's rates?")

	suite.Require().NoError(err)
	suite.Equal(domain.IntentExchangeRateQuery, response.Intent)
	suite.Contains(response.Reply, "1 EUR = $1.18")
	suite.Contains(response.Reply, "1 JPY = $0.0067")
}

func (suite *ResponderServiceTestSuite) TestRespond_InvoiceWithoutAmount() {
	ctx := context.Background()

	response, err := suite.service.Respond(ctx, "I have an invoice question")

	suite.Require().NoError(err)
	suite.Equal(domain.IntentInvoiceContent, response.Intent)
	suite.Contains(response.Reply, "could not find a currency amount")
	suite.Nil(response.Conversion)
	suite.Nil(response.Analysis)

	// The clarifying path must leave the pipeline counters untouched.
	snapshot, err := suite.stats.GetStatistics(ctx)
	suite.Require().NoError(err)
	suite.Zero(snapshot.InvoicesProcessed)
}

func (suite *ResponderServiceTestSuite) TestRespond_InvoiceRunsPipeline() {
	ctx := context.Background()

	response, err := suite.service.Respond(ctx, "Invoice total: €500 From: Microsoft Corporation")

	suite.Require().NoError(err)
	suite.Equal(domain.IntentInvoiceContent, response.Intent)
	suite.Contains(response.Reply, "€500.00")
	suite.Contains(response.Reply, "$590.00")
	suite.Contains(response.Reply, "Recommendation: APPROVE")

	suite.Require().NotNil(response.Conversion)
	suite.Equal("590", response.Conversion.USDAmount.String())
	suite.Require().NotNil(response.Analysis)
	suite.Equal(domain.VendorLegitimate, response.Analysis.Vendor.Status)
	suite.False(response.Analysis.Fraud.FraudDetected)

	snapshot, err := suite.stats.GetStatistics(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), snapshot.InvoicesProcessed)
}

func (suite *ResponderServiceTestSuite) TestRespond_Statistics() {
	ctx := context.Background()

	response, err := suite.service.Respond(ctx, "show statistics")

	suite.Require().NoError(err)
	suite.Equal(domain.IntentStatisticsQuery, response.Intent)
	suite.Contains(response.Reply, "Processed 0 invoices")
}

func TestResponderService(t *testing.T) {
	suite.Run(t, new(ResponderServiceTestSuite))
}
