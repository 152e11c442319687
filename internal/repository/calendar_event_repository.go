package repository

import (
	"context"

	"margent-backend/internal/domain"
	"margent-backend/internal/store"
)

type CalendarEventRepository interface {
	List(ctx context.Context) ([]domain.CalendarEvent, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.CalendarEvent, error)
	Save(ctx context.Context, events []domain.CalendarEvent) error
}

type calendarEventRepository struct {
	store store.Store
}

func NewCalendarEventRepository(st store.Store) CalendarEventRepository {
	return &calendarEventRepository{store: st}
}

func (r *calendarEventRepository) List(ctx context.Context) ([]domain.CalendarEvent, error) {
	return load(ctx, r.store, keyCalendarEvents, DefaultCalendarEvents), nil
}

func (r *calendarEventRepository) ListByClient(ctx context.Context, clientID string) ([]domain.CalendarEvent, error) {
	events, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.CalendarEvent, 0, len(events))
	for _, e := range events {
		if e.ClientID == clientID {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (r *calendarEventRepository) Save(ctx context.Context, events []domain.CalendarEvent) error {
	return persist(ctx, r.store, keyCalendarEvents, events)
}
