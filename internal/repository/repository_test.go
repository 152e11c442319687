package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"margent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

// memStore is an in-memory store.Store for exercising the repositories
// without Redis or Postgres.
type memStore struct {
	data    map[string][]byte
	failing bool
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.failing {
		return nil, fmt.Errorf("%w: store down", domain.ErrStorage)
	}
	raw, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, domain.ErrNotFound)
	}
	return raw, nil
}

func (m *memStore) Set(ctx context.Context, key string, value []byte) error {
	if m.failing {
		return fmt.Errorf("%w: store down", domain.ErrStorage)
	}
	m.data[key] = value
	return nil
}

func TestClientRepository_DefaultsOnEmptyStore(t *testing.T) {
	repo := NewClientRepository(newMemStore())
	ctx := context.Background()

	clients, err := repo.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, DefaultClients(), clients)
}

func TestClientRepository_SaveThenList(t *testing.T) {
	repo := NewClientRepository(newMemStore())
	ctx := context.Background()

	saved := []domain.Client{{ID: "client-9", Name: "Nova Clínica", Status: domain.ClientTrial}}
	assert.NoError(t, repo.Save(ctx, saved))

	clients, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, saved, clients)
}

func TestClientRepository_GetByID(t *testing.T) {
	repo := NewClientRepository(newMemStore())
	ctx := context.Background()

	client, err := repo.GetByID(ctx, "client-1")
	assert.NoError(t, err)
	assert.Equal(t, "client-1", client.ID)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_DefaultsOnFailingStore(t *testing.T) {
	st := newMemStore()
	st.failing = true
	repo := NewClientRepository(st)
	ctx := context.Background()

	// Reads degrade to the defaults; writes surface the failure.
	clients, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, DefaultClients(), clients)

	err = repo.Save(ctx, clients)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestRepository_CorruptBlobServesDefaults(t *testing.T) {
	st := newMemStore()
	st.data[keyClients] = []byte("{not json")
	repo := NewClientRepository(st)

	clients, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, DefaultClients(), clients)
}

func TestCampaignRepository_ListByClient(t *testing.T) {
	repo := NewCampaignRepository(newMemStore())
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, []domain.Campaign{
		{ID: "1", ClientID: "client-1"},
		{ID: "2", ClientID: "client-2"},
		{ID: "3", ClientID: "client-1"},
	}))

	campaigns, err := repo.ListByClient(ctx, "client-1")
	assert.NoError(t, err)
	assert.Len(t, campaigns, 2)
	for _, c := range campaigns {
		assert.Equal(t, "client-1", c.ClientID)
	}
}

func TestFunnelRepository_PerClientBlob(t *testing.T) {
	repo := NewFunnelRepository(newMemStore())
	ctx := context.Background()

	data, err := repo.Get(ctx, "client-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, data.Stages)

	// Unknown clients get an empty funnel, not an error.
	empty, err := repo.Get(ctx, "client-99")
	assert.NoError(t, err)
	assert.Equal(t, "client-99", empty.ClientID)
	assert.Empty(t, empty.Stages)

	updated := domain.FunnelData{ClientID: "client-99", Stages: []domain.FunnelStage{{Name: "Visitantes", Leads: 10, Percentage: 100}}}
	assert.NoError(t, repo.Save(ctx, updated))

	reloaded, err := repo.Get(ctx, "client-99")
	assert.NoError(t, err)
	assert.Equal(t, updated.Stages, reloaded.Stages)

	// Other clients keep their data after a save.
	data2, err := repo.Get(ctx, "client-1")
	assert.NoError(t, err)
	assert.Equal(t, data.Stages, data2.Stages)
}

func TestFeedbackRepository_AppendOnly(t *testing.T) {
	repo := NewFeedbackRepository(newMemStore())
	ctx := context.Background()

	first, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, first)

	assert.NoError(t, repo.Append(ctx, domain.AgentFeedback{NotificationID: "notif-1", Decision: domain.DecisionApprove}))
	assert.NoError(t, repo.Append(ctx, domain.AgentFeedback{NotificationID: "notif-2", Decision: domain.DecisionReject}))

	all, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "notif-1", all[0].NotificationID)
	assert.Equal(t, "notif-2", all[1].NotificationID)
}

func TestSeed_OverwritesEverything(t *testing.T) {
	st := newMemStore()
	ctx := context.Background()

	// Dirty the store first.
	clientRepo := NewClientRepository(st)
	assert.NoError(t, clientRepo.Save(ctx, []domain.Client{{ID: "custom"}}))
	feedbackRepo := NewFeedbackRepository(st)
	assert.NoError(t, feedbackRepo.Append(ctx, domain.AgentFeedback{NotificationID: "notif-1"}))

	assert.NoError(t, Seed(ctx, st))

	clients, err := clientRepo.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, DefaultClients(), clients)

	feedbacks, err := feedbackRepo.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, feedbacks)

	notifs, err := NewNotificationRepository(st).List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, DefaultNotifications(), notifs)
}

func TestDefaultNotificationParametersAreCompact(t *testing.T) {
	// Raw parameter bags are stored verbatim but written back compacted;
	// keeping the literals compact is what makes persistence a fixpoint.
	for _, n := range DefaultNotifications() {
		for _, a := range n.ProposedActions {
			if len(a.Parameters) == 0 {
				continue
			}
			var buf bytes.Buffer
			assert.NoError(t, json.Compact(&buf, a.Parameters), "action %s", a.ID)
			assert.Equal(t, buf.String(), string(a.Parameters), "action %s", a.ID)
		}
	}
}
