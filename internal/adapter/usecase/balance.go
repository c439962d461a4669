package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"direct-ads/internal/core/domain"
	"direct-ads/internal/core/port"
)

const getBalanceMethod = "GetBalance"

type balanceItem struct {
	CampaignID int64   `json:"CampaignID"`
	Rest       float64 `json:"Rest"`
}

// BalanceCalculator reports the account balance. The legacy API only
// exposes balance per campaign, so the first chosen campaign serves as the
// billing anchor for the whole account.
type BalanceCalculator struct {
	registry *CampaignRegistry
	gateway  port.DirectGateway
	policy   domain.CurrencyPolicy
}

// NewBalanceCalculator creates a calculator converting with policy.
func NewBalanceCalculator(registry *CampaignRegistry, gateway port.DirectGateway, policy domain.CurrencyPolicy) *BalanceCalculator {
	return &BalanceCalculator{registry: registry, gateway: gateway, policy: policy}
}

// GetBalance returns the remaining budget in normalized currency. It fails
// with a *domain.RemoteError wrapping domain.ErrNoBillingAnchor when no
// campaign is chosen.
func (b *BalanceCalculator) GetBalance(ctx context.Context) (float64, error) {
	campaigns, err := b.registry.ListCampaigns(ctx, nil)
	if err != nil {
		return 0, err
	}
	idx := -1
	for i := range campaigns {
		if campaigns[i].Chosen {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, &domain.RemoteError{Method: getBalanceMethod, Err: domain.ErrNoBillingAnchor}
	}

	resp, err := b.gateway.CallLegacy(ctx, getBalanceMethod, []int64{campaigns[idx].ID})
	if err != nil {
		return 0, err
	}
	var items []balanceItem
	if err = json.Unmarshal(resp.Data, &items); err != nil {
		return 0, &domain.RemoteError{Method: getBalanceMethod, Err: fmt.Errorf("decode data: %w", err)}
	}
	if len(items) == 0 {
		return 0, &domain.RemoteError{Method: getBalanceMethod, Payload: "empty balance data"}
	}
	return b.policy.Balance(items[0].Rest), nil
}
