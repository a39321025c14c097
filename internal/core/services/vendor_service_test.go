package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/core/services"
)

type VendorServiceTestSuite struct {
	suite.Suite
	service portssvc.VendorVerifierSvc
}

func (suite *VendorServiceTestSuite) SetupTest() {
	suite.service = services.NewVendorService()
}

func (suite *VendorServiceTestSuite) TestVerifyVendor_ExactRegistryMatch() {
	result := suite.service.VerifyVendor(context.Background(), "From: Microsoft Corporation\nInvoice #: INV-001")

	suite.Equal("Microsoft Corporation", result.VendorName)
	suite.Equal(domain.VendorLegitimate, result.Status)
	suite.Equal("Microsoft", result.MatchedVendor)
	suite.Equal(domain.RiskLow, result.RiskLevel)
	suite.InDelta(1.0, result.Confidence, 1e-9)
	suite.Empty(result.FraudIndicators)
}

func (suite *VendorServiceTestSuite) TestVerifyVendor_CloseVariationMatches() {
	result := suite.service.VerifyVendor(context.Background(), "Vendor: Microsoft Corporations")

	suite.Equal(domain.VendorLegitimate, result.Status)
	suite.Equal("Microsoft", result.MatchedVendor)
	suite.Greater(result.Confidence, 0.85)
}

func (suite *VendorServiceTestSuite) TestVerifyVendor_MisspellingOverridesSimilarity() {
	// "Mircosoft Corporation" is close enough to pass the similarity check;
	// the misspelling screen must still flag it.
	result := suite.service.VerifyVendor(context.Background(), "From: Mircosoft Corporation")

	suite.Equal(domain.VendorFraudulent, result.Status)
	suite.Equal(domain.RiskCritical, result.RiskLevel)
	suite.InDelta(0.95, result.Confidence, 1e-9)
	suite.Contains(result.FraudIndicators, "Misspelled legitimate vendor name")
}

func (suite *VendorServiceTestSuite) TestVerifyVendor_NoVendorLine() {
	result := suite.service.VerifyVendor(context.Background(), "Invoice total: $500")

	suite.Equal("Not detected", result.VendorName)
	suite.Equal(domain.VendorUnknown, result.Status)
	suite.Equal(domain.RiskMedium, result.RiskLevel)
	suite.InDelta(0.5, result.Confidence, 1e-9)
}

func (suite *VendorServiceTestSuite) TestVerifyVendor_UnknownVendor() {
	result := suite.service.VerifyVendor(context.Background(), "From: Acme Widgets Ltd")

	suite.Equal("Acme Widgets Ltd", result.VendorName)
	suite.Equal(domain.VendorUnknown, result.Status)
	suite.Empty(result.MatchedVendor)
	suite.Equal(domain.RiskMedium, result.RiskLevel)
}

func (suite *VendorServiceTestSuite) TestVerifyVendor_FromLineTakesPriority() {
	result := suite.service.VerifyVendor(context.Background(), "From: Amazon Web Services\nVendor: Acme Widgets")

	suite.Equal("Amazon Web Services", result.VendorName)
	suite.Equal(domain.VendorLegitimate, result.Status)
	suite.Equal("Amazon", result.MatchedVendor)
}

func TestVendorService(t *testing.T) {
	suite.Run(t, new(VendorServiceTestSuite))
}
