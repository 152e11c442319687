package repository

import (
	"context"

	"margent-backend/internal/domain"
	"margent-backend/internal/store"
)

// FunnelRepository stores funnel snapshots as a single blob keyed by
// client id inside the document.
type FunnelRepository interface {
	Get(ctx context.Context, clientID string) (domain.FunnelData, error)
	Save(ctx context.Context, data domain.FunnelData) error
}

type funnelRepository struct {
	store store.Store
}

func NewFunnelRepository(st store.Store) FunnelRepository {
	return &funnelRepository{store: st}
}

func (r *funnelRepository) Get(ctx context.Context, clientID string) (domain.FunnelData, error) {
	all := load(ctx, r.store, keyFunnelData, DefaultFunnelData)
	if data, ok := all[clientID]; ok {
		return data, nil
	}
	return domain.FunnelData{ClientID: clientID, Stages: []domain.FunnelStage{}, RecentLeads: []domain.Lead{}}, nil
}

func (r *funnelRepository) Save(ctx context.Context, data domain.FunnelData) error {
	// Same miss-default as Get: saving one client's funnel on a fresh
	// store must not drop the other clients' default data.
	all := load(ctx, r.store, keyFunnelData, DefaultFunnelData)
	all[data.ClientID] = data
	return persist(ctx, r.store, keyFunnelData, all)
}
