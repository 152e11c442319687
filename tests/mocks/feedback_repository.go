package mocks

import (
	"context"

	"margent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type FeedbackRepository struct {
	mock.Mock
}

func (m *FeedbackRepository) List(ctx context.Context) ([]domain.AgentFeedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AgentFeedback), args.Error(1)
}

func (m *FeedbackRepository) Append(ctx context.Context, feedback domain.AgentFeedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}
