package repository

import (
	"context"
	"fmt"

	"margent-backend/internal/domain"
	"margent-backend/internal/store"
)

type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Save(ctx context.Context, clients []domain.Client) error
}

type clientRepository struct {
	store store.Store
}

func NewClientRepository(st store.Store) ClientRepository {
	return &clientRepository{store: st}
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	return load(ctx, r.store, keyClients, DefaultClients), nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	clients, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i], nil
		}
	}
	return nil, fmt.Errorf("client %s: %w", id, domain.ErrNotFound)
}

func (r *clientRepository) Save(ctx context.Context, clients []domain.Client) error {
	return persist(ctx, r.store, keyClients, clients)
}
