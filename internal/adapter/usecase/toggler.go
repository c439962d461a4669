package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"direct-ads/internal/core/domain"
	"direct-ads/internal/core/port"
)

type campaignActionParams struct {
	SelectionCriteria idsCriteria `json:"SelectionCriteria"`
}

type campaignActionItem struct {
	ID     *int64            `json:"Id"`
	Errors []json.RawMessage `json:"Errors,omitempty"`
}

type campaignActionResult struct {
	ResumeResults  []campaignActionItem `json:"ResumeResults"`
	SuspendResults []campaignActionItem `json:"SuspendResults"`
}

// CampaignToggler switches campaigns on and off. All of its operations are
// best effort: failures are logged and turned into the operation's default
// value, with the cause kept in the returned Outcome.
type CampaignToggler struct {
	registry *CampaignRegistry
	gateway  port.DirectGateway
	logger   *slog.Logger
}

// NewCampaignToggler creates a toggler on top of the registry.
func NewCampaignToggler(registry *CampaignRegistry, gateway port.DirectGateway, logger *slog.Logger) *CampaignToggler {
	return &CampaignToggler{registry: registry, gateway: gateway, logger: logger}
}

// SetCampaignState resumes (on) or suspends (!on) a single campaign. It is
// true only when the platform echoes the campaign id back.
func (t *CampaignToggler) SetCampaignState(ctx context.Context, id int64, on bool) domain.Outcome[bool] {
	method := "suspend"
	if on {
		method = "resume"
	}
	logger := t.logger.With(slog.Int64("campaign_id", id), slog.String("method", method))

	params := campaignActionParams{SelectionCriteria: idsCriteria{Ids: []int64{id}}}
	raw, err := t.gateway.Call(ctx, campaignsEndpoint, method, params)
	if err != nil {
		logger.Error("campaign state change failed", slog.Any("error", err))
		return domain.Defaulted(false, err)
	}

	var res campaignActionResult
	if err = json.Unmarshal(raw, &res); err != nil {
		err = &domain.RemoteError{Method: "campaigns." + method, Err: fmt.Errorf("decode result: %w", err)}
		logger.Error("campaign state change failed", slog.Any("error", err))
		return domain.Defaulted(false, err)
	}
	items := res.SuspendResults
	if on {
		items = res.ResumeResults
	}
	if len(items) > 0 && items[0].ID != nil && *items[0].ID == id {
		logger.Debug("campaign state changed")
		return domain.Succeeded(true)
	}

	logger.Error("campaign state not changed", slog.String("result", string(raw)))
	return domain.Defaulted(false, fmt.Errorf("campaign %d %s: %w", id, method, domain.ErrNotEchoed))
}

// SetDomainState switches every chosen campaign of domainName whose state
// differs from on. Campaigns are processed one at a time in registry order
// and a failure does not stop the rest. The result is true only when no
// campaign failed; the failed ids are reported in a *domain.ToggleError.
func (t *CampaignToggler) SetDomainState(ctx context.Context, domainName string, on bool) domain.Outcome[bool] {
	logger := t.logger.With(
		slog.String("operation_id", uuid.NewString()),
		slog.String("domain", domainName),
		slog.Bool("on", on),
	)

	campaigns, err := t.registry.ListCampaigns(ctx, nil)
	if err != nil {
		logger.Error("domain state change failed", slog.Any("error", err))
		return domain.Defaulted(false, err)
	}

	var failed []int64
	for _, c := range campaigns {
		if !c.Chosen || !c.InDomain(domainName) || c.On() == on {
			continue
		}
		if !t.SetCampaignState(ctx, c.ID, on).Value {
			failed = append(failed, c.ID)
		}
	}
	if len(failed) > 0 {
		err = &domain.ToggleError{Domain: domainName, On: on, FailedIDs: failed}
		logger.Error("some chosen campaigns were not switched", slog.Any("failed_ids", failed))
		return domain.Defaulted(false, err)
	}
	return domain.Succeeded(true)
}

// IsDomainOff reports whether every chosen campaign of domainName is off.
// A domain without chosen campaigns is off. On failure the answer is true.
func (t *CampaignToggler) IsDomainOff(ctx context.Context, domainName string) domain.Outcome[bool] {
	campaigns, err := t.registry.ListCampaigns(ctx, nil)
	if err != nil {
		t.logger.Error("domain state check failed", slog.String("domain", domainName), slog.Any("error", err))
		return domain.Defaulted(true, err)
	}
	for _, c := range campaigns {
		if c.Chosen && c.InDomain(domainName) && c.On() {
			return domain.Succeeded(false)
		}
	}
	return domain.Succeeded(true)
}
