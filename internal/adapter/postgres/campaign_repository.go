package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"direct-ads/internal/core/domain"
)

// CampaignMetaRepository implements port.CampaignMetaRepository using
// pgxpool for PostgreSQL. Records live in the direct_campaigns table.
type CampaignMetaRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignMetaRepository returns a new repository instance.
func NewCampaignMetaRepository(pool *pgxpool.Pool) *CampaignMetaRepository {
	return &CampaignMetaRepository{pool: pool}
}

// GetCampaignMeta returns the metadata of a campaign, or nil if none is
// stored.
func (r *CampaignMetaRepository) GetCampaignMeta(ctx context.Context, campaignID int64) (*domain.CampaignMeta, error) {
	meta := domain.CampaignMeta{CampaignID: campaignID}
	err := r.pool.QueryRow(ctx, `SELECT chosen, domain FROM direct_campaigns WHERE campaign_id = $1`, campaignID).
		Scan(&meta.Chosen, &meta.Domain)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// UpsertCampaignMeta inserts the record or overwrites chosen and domain of
// the existing one in a single statement.
func (r *CampaignMetaRepository) UpsertCampaignMeta(ctx context.Context, meta domain.CampaignMeta) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO direct_campaigns (campaign_id, chosen, domain, created_at, updated_at)
        VALUES ($1, $2, $3, now(), now())
        ON CONFLICT (campaign_id) DO UPDATE
        SET chosen = EXCLUDED.chosen,
            domain = EXCLUDED.domain,
            updated_at = now()`,
		meta.CampaignID, meta.Chosen, meta.Domain)
	return err
}
