package repository

import (
	"context"

	"margent-backend/internal/domain"
	"margent-backend/internal/store"
)

// MemoryRepository stores the agent memory snapshot as one document.
type MemoryRepository interface {
	Get(ctx context.Context) (domain.AgentMemory, error)
	Save(ctx context.Context, memory domain.AgentMemory) error
}

type memoryRepository struct {
	store store.Store
}

func NewMemoryRepository(st store.Store) MemoryRepository {
	return &memoryRepository{store: st}
}

func (r *memoryRepository) Get(ctx context.Context) (domain.AgentMemory, error) {
	return load(ctx, r.store, keyMemory, DefaultAgentMemory), nil
}

func (r *memoryRepository) Save(ctx context.Context, memory domain.AgentMemory) error {
	return persist(ctx, r.store, keyMemory, memory)
}

// ReasoningRepository stores the agent reasoning trace as one document.
type ReasoningRepository interface {
	Get(ctx context.Context) (domain.AgentReasoning, error)
	Save(ctx context.Context, reasoning domain.AgentReasoning) error
}

type reasoningRepository struct {
	store store.Store
}

func NewReasoningRepository(st store.Store) ReasoningRepository {
	return &reasoningRepository{store: st}
}

func (r *reasoningRepository) Get(ctx context.Context) (domain.AgentReasoning, error) {
	return load(ctx, r.store, keyReasoning, DefaultAgentReasoning), nil
}

func (r *reasoningRepository) Save(ctx context.Context, reasoning domain.AgentReasoning) error {
	return persist(ctx, r.store, keyReasoning, reasoning)
}
