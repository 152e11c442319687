package mocks

import (
	"context"

	"margent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type CampaignRepository struct {
	mock.Mock
}

func (m *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Campaign), args.Error(1)
}

func (m *CampaignRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Campaign, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Campaign), args.Error(1)
}

func (m *CampaignRepository) Save(ctx context.Context, campaigns []domain.Campaign) error {
	args := m.Called(ctx, campaigns)
	return args.Error(0)
}
