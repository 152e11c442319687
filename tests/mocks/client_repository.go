package mocks

import (
	"context"

	"margent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type ClientRepository struct {
	mock.Mock
}

func (m *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *ClientRepository) Save(ctx context.Context, clients []domain.Client) error {
	args := m.Called(ctx, clients)
	return args.Error(0)
}
