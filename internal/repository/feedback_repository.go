package repository

import (
	"context"

	"margent-backend/internal/domain"
	"margent-backend/internal/store"
)

// FeedbackRepository holds the append-only trail of decisions taken on
// notifications. Existing records are never rewritten.
type FeedbackRepository interface {
	List(ctx context.Context) ([]domain.AgentFeedback, error)
	Append(ctx context.Context, feedback domain.AgentFeedback) error
}

type feedbackRepository struct {
	store store.Store
}

func NewFeedbackRepository(st store.Store) FeedbackRepository {
	return &feedbackRepository{store: st}
}

func (r *feedbackRepository) List(ctx context.Context) ([]domain.AgentFeedback, error) {
	return load(ctx, r.store, keyFeedbacks, func() []domain.AgentFeedback {
		return []domain.AgentFeedback{}
	}), nil
}

func (r *feedbackRepository) Append(ctx context.Context, feedback domain.AgentFeedback) error {
	feedbacks, err := r.List(ctx)
	if err != nil {
		return err
	}
	return persist(ctx, r.store, keyFeedbacks, append(feedbacks, feedback))
}
