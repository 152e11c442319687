package mocks

import (
	"context"

	"margent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) List(ctx context.Context) ([]domain.ProactiveNotification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProactiveNotification), args.Error(1)
}

func (m *NotificationRepository) GetByID(ctx context.Context, id string) (*domain.ProactiveNotification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProactiveNotification), args.Error(1)
}

func (m *NotificationRepository) Save(ctx context.Context, notifications []domain.ProactiveNotification) error {
	args := m.Called(ctx, notifications)
	return args.Error(0)
}
