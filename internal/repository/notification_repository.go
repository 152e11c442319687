package repository

import (
	"context"
	"fmt"

	"margent-backend/internal/domain"
	"margent-backend/internal/store"
)

type NotificationRepository interface {
	List(ctx context.Context) ([]domain.ProactiveNotification, error)
	GetByID(ctx context.Context, id string) (*domain.ProactiveNotification, error)
	Save(ctx context.Context, notifications []domain.ProactiveNotification) error
}

type notificationRepository struct {
	store store.Store
}

func NewNotificationRepository(st store.Store) NotificationRepository {
	return &notificationRepository{store: st}
}

func (r *notificationRepository) List(ctx context.Context) ([]domain.ProactiveNotification, error) {
	return load(ctx, r.store, keyNotifications, DefaultNotifications), nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (*domain.ProactiveNotification, error) {
	notifications, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range notifications {
		if notifications[i].ID == id {
			return &notifications[i], nil
		}
	}
	return nil, fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
}

func (r *notificationRepository) Save(ctx context.Context, notifications []domain.ProactiveNotification) error {
	return persist(ctx, r.store, keyNotifications, notifications)
}
