package port

import (
	"context"

	"direct-ads/internal/core/domain"
)

// CampaignMetaRepository defines the persistence layer for locally owned
// campaign metadata. It is an outbound port in hexagonal architecture.
type CampaignMetaRepository interface {
	// GetCampaignMeta returns the metadata record for a campaign, or nil
	// when none exists.
	GetCampaignMeta(ctx context.Context, campaignID int64) (*domain.CampaignMeta, error)
	// UpsertCampaignMeta inserts the record or overwrites chosen/domain of
	// an existing one. Last write wins.
	UpsertCampaignMeta(ctx context.Context, meta domain.CampaignMeta) error
}
