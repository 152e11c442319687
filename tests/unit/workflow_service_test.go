package unit_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"margent-backend/internal/domain"
	"margent-backend/internal/pkg/clock"
	"margent-backend/internal/service/workflow"
	"margent-backend/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testInstant = time.Date(2025, 5, 2, 10, 30, 0, 0, time.UTC)

func stringPtr(s string) *string { return &s }

func newWorkflowService(
	notifRepo *mocks.NotificationRepository,
	clientRepo *mocks.ClientRepository,
	campaignRepo *mocks.CampaignRepository,
	feedbackRepo *mocks.FeedbackRepository,
	logRepo *mocks.AgentLogRepository,
) workflow.Service {
	return workflow.NewService(notifRepo, clientRepo, campaignRepo, feedbackRepo, logRepo, clock.NewFixed(testInstant))
}

func campaignAction(id, title string, params map[string]interface{}) domain.ProposedAction {
	raw, _ := json.Marshal(params)
	return domain.ProposedAction{
		ID:         id,
		Type:       domain.ActionCreateCampaign,
		Title:      title,
		Parameters: raw,
	}
}

func pendingNotification(id string, actions ...domain.ProposedAction) domain.ProactiveNotification {
	return domain.ProactiveNotification{
		ID:              id,
		Type:            domain.NotifSuggestion,
		Message:         "Oportunidade detectada",
		Status:          domain.NotifPending,
		ProposedActions: actions,
	}
}

func TestWorkflowService_Approve(t *testing.T) {
	mockNotifRepo := new(mocks.NotificationRepository)
	mockClientRepo := new(mocks.ClientRepository)
	mockCampaignRepo := new(mocks.CampaignRepository)
	mockFeedbackRepo := new(mocks.FeedbackRepository)
	mockLogRepo := new(mocks.AgentLogRepository)

	svc := newWorkflowService(mockNotifRepo, mockClientRepo, mockCampaignRepo, mockFeedbackRepo, mockLogRepo)
	ctx := context.Background()

	action := campaignAction("action-1", "Campanha Dia das Mães", map[string]interface{}{
		"clientId": "client-1",
		"budget":   1500,
		"channels": []string{"Instagram"},
	})
	notif := pendingNotification("notif-1", action)

	mockNotifRepo.On("List", ctx).Return([]domain.ProactiveNotification{notif}, nil)
	mockNotifRepo.On("Save", ctx, mock.MatchedBy(func(ns []domain.ProactiveNotification) bool {
		return len(ns) == 1 && ns[0].Status == domain.NotifApproved
	})).Return(nil).Once()
	mockNotifRepo.On("Save", ctx, mock.MatchedBy(func(ns []domain.ProactiveNotification) bool {
		return len(ns) == 1 && ns[0].Status == domain.NotifImplemented
	})).Return(nil).Once()

	mockFeedbackRepo.On("Append", ctx, mock.MatchedBy(func(f domain.AgentFeedback) bool {
		return f.NotificationID == "notif-1" &&
			f.Decision == domain.DecisionApprove &&
			f.Feedback != nil && *f.Feedback == "ótima ideia" &&
			f.Timestamp.Equal(testInstant)
	})).Return(nil).Once()

	mockClientRepo.On("GetByID", ctx, "client-1").Return(&domain.Client{ID: "client-1", Name: "Clínica Belle"}, nil)

	mockCampaignRepo.On("List", ctx).Return([]domain.Campaign{}, nil)
	mockCampaignRepo.On("Save", ctx, mock.MatchedBy(func(cs []domain.Campaign) bool {
		if len(cs) != 1 {
			return false
		}
		c := cs[0]
		return c.ClientID == "client-1" &&
			c.Name == "Campanha Dia das Mães" &&
			c.Status == domain.CampaignActive &&
			c.Budget == 1500 &&
			c.Channel == "Instagram" &&
			c.Start == "2025-05-02" &&
			c.End == "2025-05-09" &&
			c.CreatedBy == domain.AuthorAgent &&
			c.KPIs == (domain.CampaignKPIs{}) &&
			c.ID != ""
	})).Return(nil).Once()

	mockLogRepo.On("Append", ctx, mock.MatchedBy(func(e domain.AgentLogEntry) bool {
		return e.Status == domain.LogSuccess &&
			e.Action == "Implementação: Campanha Dia das Mães" &&
			e.ClientID != nil && *e.ClientID == "client-1"
	})).Return(nil).Once()

	implemented := notif
	implemented.Status = domain.NotifImplemented
	mockNotifRepo.On("GetByID", ctx, "notif-1").Return(&implemented, nil)

	result, err := svc.SubmitDecision(ctx, "notif-1", domain.DecisionApprove, stringPtr("ótima ideia"))

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, domain.NotifImplemented, result.Status)

	mockNotifRepo.AssertExpectations(t)
	mockClientRepo.AssertExpectations(t)
	mockCampaignRepo.AssertExpectations(t)
	mockFeedbackRepo.AssertExpectations(t)
	mockLogRepo.AssertExpectations(t)
}

func TestWorkflowService_Reject(t *testing.T) {
	mockNotifRepo := new(mocks.NotificationRepository)
	mockClientRepo := new(mocks.ClientRepository)
	mockCampaignRepo := new(mocks.CampaignRepository)
	mockFeedbackRepo := new(mocks.FeedbackRepository)
	mockLogRepo := new(mocks.AgentLogRepository)

	svc := newWorkflowService(mockNotifRepo, mockClientRepo, mockCampaignRepo, mockFeedbackRepo, mockLogRepo)
	ctx := context.Background()

	notif := pendingNotification("notif-1", campaignAction("action-1", "Campanha", map[string]interface{}{
		"clientId": "client-1",
		"budget":   1500,
		"channels": []string{"Instagram"},
	}))

	mockNotifRepo.On("List", ctx).Return([]domain.ProactiveNotification{notif}, nil)
	mockNotifRepo.On("Save", ctx, mock.MatchedBy(func(ns []domain.ProactiveNotification) bool {
		return len(ns) == 1 && ns[0].Status == domain.NotifRejected
	})).Return(nil).Once()
	mockFeedbackRepo.On("Append", ctx, mock.MatchedBy(func(f domain.AgentFeedback) bool {
		return f.Decision == domain.DecisionReject && f.Feedback == nil
	})).Return(nil).Once()

	result, err := svc.SubmitDecision(ctx, "notif-1", domain.DecisionReject, nil)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, domain.NotifRejected, result.Status)

	// Rejection never touches campaigns or the agent log.
	mockCampaignRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	mockLogRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	mockNotifRepo.AssertExpectations(t)
	mockFeedbackRepo.AssertExpectations(t)
}

func TestWorkflowService_SubmitDecision_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Notification", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		mockFeedbackRepo := new(mocks.FeedbackRepository)
		svc := newWorkflowService(mockNotifRepo, new(mocks.ClientRepository), new(mocks.CampaignRepository), mockFeedbackRepo, new(mocks.AgentLogRepository))

		mockNotifRepo.On("List", ctx).Return([]domain.ProactiveNotification{}, nil)

		result, err := svc.SubmitDecision(ctx, "missing", domain.DecisionApprove, nil)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		// No feedback is recorded for a decision that never applied.
		mockFeedbackRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Decision", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		svc := newWorkflowService(mockNotifRepo, new(mocks.ClientRepository), new(mocks.CampaignRepository), new(mocks.FeedbackRepository), new(mocks.AgentLogRepository))

		result, err := svc.SubmitDecision(ctx, "notif-1", domain.Decision("maybe"), nil)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrInvalidParameters)
		mockNotifRepo.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("Already Decided", func(t *testing.T) {
		mockNotifRepo := new(mocks.NotificationRepository)
		svc := newWorkflowService(mockNotifRepo, new(mocks.ClientRepository), new(mocks.CampaignRepository), new(mocks.FeedbackRepository), new(mocks.AgentLogRepository))

		decided := pendingNotification("notif-1")
		decided.Status = domain.NotifRejected
		mockNotifRepo.On("List", ctx).Return([]domain.ProactiveNotification{decided}, nil)

		result, err := svc.SubmitDecision(ctx, "notif-1", domain.DecisionApprove, nil)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestWorkflowService_Implement_ExactlyOnce(t *testing.T) {
	mockNotifRepo := new(mocks.NotificationRepository)
	svc := newWorkflowService(mockNotifRepo, new(mocks.ClientRepository), new(mocks.CampaignRepository), new(mocks.FeedbackRepository), new(mocks.AgentLogRepository))
	ctx := context.Background()

	implemented := pendingNotification("notif-1")
	implemented.Status = domain.NotifImplemented
	mockNotifRepo.On("List", ctx).Return([]domain.ProactiveNotification{implemented}, nil)

	err := svc.Implement(ctx, "notif-1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestWorkflowService_Implement_MultipleCampaignActions(t *testing.T) {
	mockNotifRepo := new(mocks.NotificationRepository)
	mockClientRepo := new(mocks.ClientRepository)
	mockCampaignRepo := new(mocks.CampaignRepository)
	mockLogRepo := new(mocks.AgentLogRepository)

	svc := newWorkflowService(mockNotifRepo, mockClientRepo, mockCampaignRepo, new(mocks.FeedbackRepository), mockLogRepo)
	ctx := context.Background()

	notif := pendingNotification("notif-1",
		campaignAction("action-1", "Campanha A", map[string]interface{}{
			"clientId": "client-1", "budget": 500, "channels": []string{"Instagram", "Facebook"},
		}),
		campaignAction("action-2", "Campanha B", map[string]interface{}{
			"clientId": "client-2", "budget": 800, "channels": []string{"Google Ads"},
		}),
	)
	notif.Status = domain.NotifApproved

	mockNotifRepo.On("List", ctx).Return([]domain.ProactiveNotification{notif}, nil)
	mockNotifRepo.On("Save", ctx, mock.MatchedBy(func(ns []domain.ProactiveNotification) bool {
		return ns[0].Status == domain.NotifImplemented
	})).Return(nil).Once()

	mockClientRepo.On("GetByID", ctx, "client-1").Return(&domain.Client{ID: "client-1"}, nil)
	mockClientRepo.On("GetByID", ctx, "client-2").Return(&domain.Client{ID: "client-2"}, nil)

	var saved [][]domain.Campaign
	mockCampaignRepo.On("List", ctx).Return([]domain.Campaign{}, nil)
	mockCampaignRepo.On("Save", ctx, mock.AnythingOfType("[]domain.Campaign")).Run(func(args mock.Arguments) {
		saved = append(saved, args.Get(1).([]domain.Campaign))
	}).Return(nil).Twice()

	mockLogRepo.On("Append", ctx, mock.MatchedBy(func(e domain.AgentLogEntry) bool {
		return e.Status == domain.LogSuccess
	})).Return(nil).Times(2)

	err := svc.Implement(ctx, "notif-1")

	assert.NoError(t, err)
	assert.Len(t, saved, 2)
	assert.Equal(t, "Instagram + Facebook", saved[0][0].Channel)
	assert.Equal(t, "Google Ads", saved[1][0].Channel)
	mockCampaignRepo.AssertExpectations(t)
	mockLogRepo.AssertExpectations(t)
}

func TestWorkflowService_Implement_PartialFailure(t *testing.T) {
	mockNotifRepo := new(mocks.NotificationRepository)
	mockClientRepo := new(mocks.ClientRepository)
	mockCampaignRepo := new(mocks.CampaignRepository)
	mockLogRepo := new(mocks.AgentLogRepository)

	svc := newWorkflowService(mockNotifRepo, mockClientRepo, mockCampaignRepo, new(mocks.FeedbackRepository), mockLogRepo)
	ctx := context.Background()

	// First action targets a client that does not exist, second one is fine.
	notif := pendingNotification("notif-1",
		campaignAction("action-1", "Campanha órfã", map[string]interface{}{
			"clientId": "ghost", "budget": 100, "channels": []string{"Instagram"},
		}),
		campaignAction("action-2", "Campanha válida", map[string]interface{}{
			"clientId": "client-1", "budget": 300, "channels": []string{"Instagram"},
		}),
	)
	notif.Status = domain.NotifApproved

	mockNotifRepo.On("List", ctx).Return([]domain.ProactiveNotification{notif}, nil)
	mockNotifRepo.On("Save", ctx, mock.MatchedBy(func(ns []domain.ProactiveNotification) bool {
		return ns[0].Status == domain.NotifImplemented
	})).Return(nil).Once()

	mockClientRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)
	mockClientRepo.On("GetByID", ctx, "client-1").Return(&domain.Client{ID: "client-1"}, nil)

	mockCampaignRepo.On("List", ctx).Return([]domain.Campaign{}, nil)
	mockCampaignRepo.On("Save", ctx, mock.MatchedBy(func(cs []domain.Campaign) bool {
		return len(cs) == 1 && cs[0].ClientID == "client-1"
	})).Return(nil).Once()

	mockLogRepo.On("Append", ctx, mock.MatchedBy(func(e domain.AgentLogEntry) bool {
		return e.Status == domain.LogFailed && e.ClientID != nil && *e.ClientID == "ghost"
	})).Return(nil).Once()
	mockLogRepo.On("Append", ctx, mock.MatchedBy(func(e domain.AgentLogEntry) bool {
		return e.Status == domain.LogSuccess
	})).Return(nil).Once()

	err := svc.Implement(ctx, "notif-1")

	// The failing action is recorded, not propagated.
	assert.NoError(t, err)
	mockNotifRepo.AssertExpectations(t)
	mockCampaignRepo.AssertExpectations(t)
	mockLogRepo.AssertExpectations(t)
}

func TestWorkflowService_Implement_NonCampaignActions(t *testing.T) {
	mockNotifRepo := new(mocks.NotificationRepository)
	mockCampaignRepo := new(mocks.CampaignRepository)
	mockLogRepo := new(mocks.AgentLogRepository)

	svc := newWorkflowService(mockNotifRepo, new(mocks.ClientRepository), mockCampaignRepo, new(mocks.FeedbackRepository), mockLogRepo)
	ctx := context.Background()

	contentParams, _ := json.Marshal(map[string]interface{}{
		"clientId": "client-1", "contentType": "post", "quantity": 5, "channels": []string{"Instagram"},
	})
	notif := pendingNotification("notif-1", domain.ProposedAction{
		ID:         "action-1",
		Type:       domain.ActionCreateContent,
		Title:      "Criar conteúdo",
		Parameters: contentParams,
	})
	notif.Status = domain.NotifApproved

	mockNotifRepo.On("List", ctx).Return([]domain.ProactiveNotification{notif}, nil)
	mockNotifRepo.On("Save", ctx, mock.Anything).Return(nil).Once()
	mockLogRepo.On("Append", ctx, mock.MatchedBy(func(e domain.AgentLogEntry) bool {
		return e.Status == domain.LogSuccess && e.ActionType == "create_content"
	})).Return(nil).Once()

	err := svc.Implement(ctx, "notif-1")

	assert.NoError(t, err)
	mockCampaignRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	mockLogRepo.AssertExpectations(t)
}
