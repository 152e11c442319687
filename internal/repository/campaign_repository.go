package repository

import (
	"context"

	"margent-backend/internal/domain"
	"margent-backend/internal/store"
)

type CampaignRepository interface {
	List(ctx context.Context) ([]domain.Campaign, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Campaign, error)
	Save(ctx context.Context, campaigns []domain.Campaign) error
}

type campaignRepository struct {
	store store.Store
}

func NewCampaignRepository(st store.Store) CampaignRepository {
	return &campaignRepository{store: st}
}

func (r *campaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	return load(ctx, r.store, keyCampaigns, DefaultCampaigns), nil
}

func (r *campaignRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Campaign, error) {
	campaigns, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if c.ClientID == clientID {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (r *campaignRepository) Save(ctx context.Context, campaigns []domain.Campaign) error {
	return persist(ctx, r.store, keyCampaigns, campaigns)
}
