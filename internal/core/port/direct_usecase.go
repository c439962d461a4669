package port

import (
	"context"

	"direct-ads/internal/core/domain"
)

// DirectUseCase defines the business operations exposed over campaigns
// hosted on the ad platform. It is the primary port used by the HTTP and
// CLI adapters. Mock implementations are generated from this interface.
type DirectUseCase interface {
	// ListCampaigns returns accepted campaigns sorted by name, optionally
	// restricted to ids. Errors propagate.
	ListCampaigns(ctx context.Context, ids []int64) ([]domain.Campaign, error)
	// GetCampaign returns a single campaign or nil when the platform does
	// not know it.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// SetCampaignChosen stores chosen/domain metadata for a campaign.
	SetCampaignChosen(ctx context.Context, id int64, chosen bool, domainName *string) error

	// SetCampaignState resumes or suspends one campaign. Failures yield
	// false with the cause attached.
	SetCampaignState(ctx context.Context, id int64, on bool) domain.Outcome[bool]
	// SetDomainState switches every chosen campaign of a domain that is not
	// already in the requested state. It is true only when none failed.
	SetDomainState(ctx context.Context, domainName string, on bool) domain.Outcome[bool]
	// IsDomainOff reports whether every chosen campaign of a domain is off.
	// Failures yield true.
	IsDomainOff(ctx context.Context, domainName string) domain.Outcome[bool]

	// GetBalance returns the account balance in normalized currency.
	GetBalance(ctx context.Context) (float64, error)
	// GetExpenses returns per-day spend for the last daysBack days.
	// Failures yield an empty map.
	GetExpenses(ctx context.Context, daysBack int) domain.Outcome[domain.ExpenseMap]
}
