package usecase

import (
	"log/slog"
	"time"

	"direct-ads/internal/core/domain"
	"direct-ads/internal/core/port"
)

// Settings carries the policy values the components need. They are passed
// in at construction instead of being read from process configuration.
type Settings struct {
	Policy      domain.CurrencyPolicy
	Location    *time.Location
	MethodLimit int
}

// Service bundles the components behind port.DirectUseCase. The toggler,
// balance calculator and expense aggregator share the registry but never
// call each other.
type Service struct {
	*CampaignRegistry
	*CampaignToggler
	*BalanceCalculator
	*ExpenseAggregator
}

var _ port.DirectUseCase = (*Service)(nil)

// NewService wires all components over one gateway and repository.
func NewService(gateway port.DirectGateway, repo port.CampaignMetaRepository, settings Settings, logger *slog.Logger) *Service {
	registry := NewCampaignRegistry(gateway, repo)
	return &Service{
		CampaignRegistry:  registry,
		CampaignToggler:   NewCampaignToggler(registry, gateway, logger),
		BalanceCalculator: NewBalanceCalculator(registry, gateway, settings.Policy),
		ExpenseAggregator: NewExpenseAggregator(registry, gateway, settings, logger),
	}
}
