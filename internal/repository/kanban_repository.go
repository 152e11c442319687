package repository

import (
	"context"

	"margent-backend/internal/domain"
	"margent-backend/internal/store"
)

type KanbanRepository interface {
	List(ctx context.Context) ([]domain.KanbanBoard, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.KanbanBoard, error)
	Save(ctx context.Context, boards []domain.KanbanBoard) error
}

type kanbanRepository struct {
	store store.Store
}

func NewKanbanRepository(st store.Store) KanbanRepository {
	return &kanbanRepository{store: st}
}

func (r *kanbanRepository) List(ctx context.Context) ([]domain.KanbanBoard, error) {
	return load(ctx, r.store, keyKanbanBoards, DefaultKanbanBoards), nil
}

func (r *kanbanRepository) ListByClient(ctx context.Context, clientID string) ([]domain.KanbanBoard, error) {
	boards, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.KanbanBoard, 0, len(boards))
	for _, b := range boards {
		if b.ClientID != nil && *b.ClientID == clientID {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (r *kanbanRepository) Save(ctx context.Context, boards []domain.KanbanBoard) error {
	return persist(ctx, r.store, keyKanbanBoards, boards)
}
