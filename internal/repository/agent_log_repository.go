package repository

import (
	"context"

	"margent-backend/internal/domain"
	"margent-backend/internal/store"
)

// AgentLogRepository holds the append-only record of executed actions.
type AgentLogRepository interface {
	List(ctx context.Context) ([]domain.AgentLogEntry, error)
	Append(ctx context.Context, entry domain.AgentLogEntry) error
}

type agentLogRepository struct {
	store store.Store
}

func NewAgentLogRepository(st store.Store) AgentLogRepository {
	return &agentLogRepository{store: st}
}

func (r *agentLogRepository) List(ctx context.Context) ([]domain.AgentLogEntry, error) {
	return load(ctx, r.store, keyLogs, DefaultAgentLogs), nil
}

func (r *agentLogRepository) Append(ctx context.Context, entry domain.AgentLogEntry) error {
	logs, err := r.List(ctx)
	if err != nil {
		return err
	}
	return persist(ctx, r.store, keyLogs, append(logs, entry))
}
