package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/fxpilot/invoice_chat_app/internal/core/domain"
	portsrepo "github.com/fxpilot/invoice_chat_app/internal/core/ports/repositories"
	portssvc "github.com/fxpilot/invoice_chat_app/internal/core/ports/services"
)

// statsService keeps in-process counters over pipeline runs. Counters reset
// with the process; the registry size comes from the repository.
type statsService struct {
	BaseService
	registryRepo portsrepo.InvoiceRegistryReader
	routing      portssvc.RoutingSvc

	mu                  sync.RWMutex
	invoicesProcessed   int64
	fraudsDetected      int64
	duplicatesPrevented int64
	totalSavingsUSD     decimal.Decimal
}

// NewStatsService creates a new statistics service.
func NewStatsService(registryRepo portsrepo.InvoiceRegistryReader, routing portssvc.RoutingSvc) portssvc.StatsSvc {
	return &statsService{
		registryRepo:    registryRepo,
		routing:         routing,
		totalSavingsUSD: decimal.Zero,
	}
}

// Ensure statsService implements the StatsSvc interface
var _ portssvc.StatsSvc = (*statsService)(nil)

// RecordInvoiceProcessed updates the counters after one pipeline run.
func (s *statsService) RecordInvoiceProcessed(ctx context.Context, fraud domain.FraudAssessment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.invoicesProcessed++
	if fraud.FraudDetected {
		s.fraudsDetected++
		s.duplicatesPrevented += int64(len(fraud.Matches))
		s.totalSavingsUSD = s.totalSavingsUSD.Add(fraud.PotentialLoss)
	}
}

// GetStatistics returns a snapshot of the counters.
func (s *statsService) GetStatistics(ctx context.Context) (*domain.ProcessingStats, error) {
	registrySize, err := s.registryRepo.CountInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count registry invoices")
		return nil, fmt.Errorf("failed to count registry invoices: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rate := 0.0
	if s.invoicesProcessed > 0 {
		rate = float64(s.fraudsDetected) / float64(s.invoicesProcessed) * 100
	}

	return &domain.ProcessingStats{
		InvoicesProcessed:   s.invoicesProcessed,
		FraudsDetected:      s.fraudsDetected,
		DuplicatesPrevented: s.duplicatesPrevented,
		TotalSavingsUSD:     s.totalSavingsUSD.Round(2),
		FraudDetectionRate:  rate,
		RegistrySize:        registrySize,
		SupportedRegions:    s.routing.SupportedRegions(),
		SupportedCurrencies: supportedCurrencyCodes(),
	}, nil
}
