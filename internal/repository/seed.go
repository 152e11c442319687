package repository

import (
	"context"

	"margent-backend/internal/domain"
	"margent-backend/internal/store"
)

// Seed overwrites every persisted collection with its default dataset.
// Existing data is lost, including accumulated feedbacks and logs.
func Seed(ctx context.Context, st store.Store) error {
	if err := persist(ctx, st, keyClients, DefaultClients()); err != nil {
		return err
	}
	if err := persist(ctx, st, keyCampaigns, DefaultCampaigns()); err != nil {
		return err
	}
	if err := persist(ctx, st, keyFunnelData, DefaultFunnelData()); err != nil {
		return err
	}
	if err := persist(ctx, st, keyCalendarEvents, DefaultCalendarEvents()); err != nil {
		return err
	}
	if err := persist(ctx, st, keyNotifications, DefaultNotifications()); err != nil {
		return err
	}
	if err := persist(ctx, st, keyFeedbacks, []domain.AgentFeedback{}); err != nil {
		return err
	}
	if err := persist(ctx, st, keyLogs, DefaultAgentLogs()); err != nil {
		return err
	}
	if err := persist(ctx, st, keyMemory, DefaultAgentMemory()); err != nil {
		return err
	}
	if err := persist(ctx, st, keyReasoning, DefaultAgentReasoning()); err != nil {
		return err
	}
	return persist(ctx, st, keyKanbanBoards, DefaultKanbanBoards())
}
