package services

import (
	portsrepo "github.com/fxpilot/invoice_chat_app/internal/core/ports/repositories"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
	"github.com/fxpilot/invoice_chat_app/internal/platform/config"
	"github.com/fxpilot/invoice_chat_app/internal/platform/events"
	"github.com/fxpilot/invoice_chat_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// chatMetrics and alertPublisher may be nil; services then skip recording and publishing.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, chatMetrics *metrics.ChatMetrics, alertPublisher events.AlertPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Detector = NewDetectorService()

	converterOptions := []ConverterOption{}
	if chatMetrics != nil {
		converterOptions = append(converterOptions, WithConverterMetrics(chatMetrics))
	}
	container.Converter = NewConverterService(repos.CurrencyRepo, converterOptions...)

	// Routing votes with the detected currency, so it depends on the detector
	container.Routing = NewRoutingService(container.Detector)
	container.Vendor = NewVendorService()
	container.Stats = NewStatsService(repos.RegistryRepo, container.Routing)

	fraudOptions := []FraudDetectorOption{}
	if alertPublisher != nil {
		fraudOptions = append(fraudOptions, WithAlertPublisher(alertPublisher))
	}
	if chatMetrics != nil {
		fraudOptions = append(fraudOptions, WithFraudMetrics(chatMetrics))
	}
	container.Fraud = NewFraudDetectorService(repos.RegistryRepo, fraudOptions...)

	analyzerOptions := []InvoiceAnalyzerOption{}
	if chatMetrics != nil {
		analyzerOptions = append(analyzerOptions, WithAnalyzerMetrics(chatMetrics))
	}
	container.Analyzer = NewInvoiceAnalyzerService(
		container.Routing,
		container.Detector,
		container.Converter,
		container.Vendor,
		container.Fraud,
		container.Stats,
		analyzerOptions...,
	)

	responderOptions := []ResponderOption{}
	if chatMetrics != nil {
		responderOptions = append(responderOptions, WithResponderMetrics(chatMetrics))
	}
	container.Responder = NewResponderService(
		container.Detector,
		container.Analyzer,
		container.Currency,
		container.Stats,
		responderOptions...,
	)

	container.Token = NewTokenService(cfg)

	return container
}
