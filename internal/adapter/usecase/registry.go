package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"direct-ads/internal/core/domain"
	"direct-ads/internal/core/port"
)

const campaignsEndpoint = "campaigns"

type idsCriteria struct {
	Ids      []int64  `json:"Ids,omitempty"`
	States   []string `json:"States,omitempty"`
	Statuses []string `json:"Statuses,omitempty"`
}

type campaignsGetParams struct {
	SelectionCriteria idsCriteria `json:"SelectionCriteria"`
	FieldNames        []string    `json:"FieldNames"`
}

type campaignsGetResult struct {
	Campaigns []struct {
		ID     int64  `json:"Id"`
		Name   string `json:"Name"`
		State  string `json:"State"`
		Status string `json:"Status"`
	} `json:"Campaigns"`
}

// CampaignRegistry is the shared read path over platform campaigns. It
// merges the remote records with locally stored metadata and owns writes
// to that metadata.
type CampaignRegistry struct {
	gateway port.DirectGateway
	repo    port.CampaignMetaRepository
}

// NewCampaignRegistry creates a registry over the given gateway and
// metadata repository.
func NewCampaignRegistry(gateway port.DirectGateway, repo port.CampaignMetaRepository) *CampaignRegistry {
	return &CampaignRegistry{gateway: gateway, repo: repo}
}

// ListCampaigns returns accepted campaigns in any listed state, restricted
// to ids when ids is not empty. Each campaign costs one metadata lookup.
// The result is sorted by name (byte order, stable).
func (r *CampaignRegistry) ListCampaigns(ctx context.Context, ids []int64) ([]domain.Campaign, error) {
	params := campaignsGetParams{
		SelectionCriteria: idsCriteria{
			Ids:      ids,
			States:   domain.ListedStates,
			Statuses: []string{domain.StatusAccepted},
		},
		FieldNames: []string{"Id", "Name", "State", "Status"},
	}
	raw, err := r.gateway.Call(ctx, campaignsEndpoint, "get", params)
	if err != nil {
		return nil, err
	}
	var res campaignsGetResult
	if err = json.Unmarshal(raw, &res); err != nil {
		return nil, &domain.RemoteError{Method: "campaigns.get", Err: fmt.Errorf("decode result: %w", err)}
	}

	campaigns := make([]domain.Campaign, 0, len(res.Campaigns))
	for _, item := range res.Campaigns {
		c := domain.Campaign{
			ID:     item.ID,
			Name:   item.Name,
			State:  item.State,
			Status: item.Status,
		}
		meta, err := r.repo.GetCampaignMeta(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("campaign %d metadata: %w", c.ID, err)
		}
		if meta != nil {
			c.Domain = meta.Domain
			c.Chosen = meta.Chosen
		}
		campaigns = append(campaigns, c)
	}
	slices.SortStableFunc(campaigns, func(a, b domain.Campaign) int {
		return strings.Compare(a.Name, b.Name)
	})
	return campaigns, nil
}

// GetCampaign returns the campaign with the given id, or nil when the
// platform reports none.
func (r *CampaignRegistry) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	campaigns, err := r.ListCampaigns(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		return nil, nil
	}
	return &campaigns[0], nil
}

// SetCampaignChosen stores the chosen flag and domain of a campaign. It is
// safe to repeat; the last call wins.
func (r *CampaignRegistry) SetCampaignChosen(ctx context.Context, id int64, chosen bool, domainName *string) error {
	return r.repo.UpsertCampaignMeta(ctx, domain.CampaignMeta{
		CampaignID: id,
		Chosen:     chosen,
		Domain:     domainName,
	})
}
