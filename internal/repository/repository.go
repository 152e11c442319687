package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"margent-backend/internal/domain"
	"margent-backend/internal/store"
)

// Blob keys, one per persisted collection.
const (
	keyClients        = "clients"
	keyCampaigns      = "campaigns"
	keyFunnelData     = "funnelData"
	keyCalendarEvents = "calendarEvents"
	keyNotifications  = "proactiveNotifications"
	keyFeedbacks      = "agentFeedbacks"
	keyLogs           = "agentLogs"
	keyMemory         = "agentMemory"
	keyReasoning      = "agentReasoning"
	keyKanbanBoards   = "kanbanBoards"
)

type Repositories struct {
	Client        ClientRepository
	Campaign      CampaignRepository
	Funnel        FunnelRepository
	CalendarEvent CalendarEventRepository
	Kanban        KanbanRepository
	Notification  NotificationRepository
	Feedback      FeedbackRepository
	AgentLog      AgentLogRepository
	Memory        MemoryRepository
	Reasoning     ReasoningRepository
}

func NewRepositories(st store.Store) *Repositories {
	return &Repositories{
		Client:        NewClientRepository(st),
		Campaign:      NewCampaignRepository(st),
		Funnel:        NewFunnelRepository(st),
		CalendarEvent: NewCalendarEventRepository(st),
		Kanban:        NewKanbanRepository(st),
		Notification:  NewNotificationRepository(st),
		Feedback:      NewFeedbackRepository(st),
		AgentLog:      NewAgentLogRepository(st),
		Memory:        NewMemoryRepository(st),
		Reasoning:     NewReasoningRepository(st),
	}
}

// load reads and decodes the blob stored under key. A missing key means the
// collection was never written and yields the built-in defaults; a storage
// or decode failure is non-fatal and yields the defaults too, with the
// condition logged.
func load[T any](ctx context.Context, st store.Store, key string, defaults func() T) T {
	raw, err := st.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logrus.WithError(err).WithField("key", key).Warn("store read failed, serving defaults")
		}
		return defaults()
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("corrupt blob, serving defaults")
		return defaults()
	}
	return v
}

// persist encodes v and swaps the whole blob stored under key.
func persist[T any](ctx context.Context, st store.Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: marshal %q: %v", domain.ErrStorage, key, err)
	}
	return st.Set(ctx, key, raw)
}
