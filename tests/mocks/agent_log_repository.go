package mocks

import (
	"context"

	"margent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type AgentLogRepository struct {
	mock.Mock
}

func (m *AgentLogRepository) List(ctx context.Context) ([]domain.AgentLogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AgentLogEntry), args.Error(1)
}

func (m *AgentLogRepository) Append(ctx context.Context, entry domain.AgentLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
