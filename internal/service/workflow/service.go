package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"margent-backend/internal/domain"
	"margent-backend/internal/pkg/clock"
	"margent-backend/internal/repository"
)

const campaignDurationDays = 7

// Synthetic execution cost attached to every implementation log entry.
var implementationCost = func() domain.EstimatedCost {
	tokens := 200
	usd := 0.02
	return domain.EstimatedCost{Tokens: &tokens, USD: &usd}
}

// Service drives the lifecycle of a proactive notification: a human
// decision on a pending notification, and the materialization of its
// proposed actions once approved.
//
// Transitions are monotonic: pending -> approved -> implemented, or
// pending -> rejected. The service enforces this on every entry point;
// state lives in shared storage, so the check cannot be left to the UI.
type Service interface {
	SubmitDecision(ctx context.Context, notificationID string, decision domain.Decision, feedback *string) (*domain.ProactiveNotification, error)
	Implement(ctx context.Context, notificationID string) error
}

type service struct {
	notifRepo    repository.NotificationRepository
	clientRepo   repository.ClientRepository
	campaignRepo repository.CampaignRepository
	feedbackRepo repository.FeedbackRepository
	logRepo      repository.AgentLogRepository
	clock        clock.Clock
}

func NewService(
	notifRepo repository.NotificationRepository,
	clientRepo repository.ClientRepository,
	campaignRepo repository.CampaignRepository,
	feedbackRepo repository.FeedbackRepository,
	logRepo repository.AgentLogRepository,
	clk clock.Clock,
) Service {
	return &service{
		notifRepo:    notifRepo,
		clientRepo:   clientRepo,
		campaignRepo: campaignRepo,
		feedbackRepo: feedbackRepo,
		logRepo:      logRepo,
		clock:        clk,
	}
}

func (s *service) SubmitDecision(ctx context.Context, notificationID string, decision domain.Decision, feedback *string) (*domain.ProactiveNotification, error) {
	if decision != domain.DecisionApprove && decision != domain.DecisionReject {
		return nil, fmt.Errorf("%w: decision %q", domain.ErrInvalidParameters, decision)
	}

	notifications, err := s.notifRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(notifications, notificationID)
	if idx < 0 {
		return nil, fmt.Errorf("notification %s: %w", notificationID, domain.ErrNotFound)
	}

	// Re-submission on a decided notification is rejected, not silently
	// accepted; replaying an approval would double-implement side effects.
	if notifications[idx].Status != domain.NotifPending {
		return nil, fmt.Errorf("%w: notification %s is %s, expected %s",
			domain.ErrInvalidTransition, notificationID, notifications[idx].Status, domain.NotifPending)
	}

	if decision == domain.DecisionReject {
		notifications[idx].Status = domain.NotifRejected
	} else {
		notifications[idx].Status = domain.NotifApproved
	}

	if err := s.notifRepo.Save(ctx, notifications); err != nil {
		return nil, err
	}

	if err := s.feedbackRepo.Append(ctx, domain.AgentFeedback{
		NotificationID: notificationID,
		Decision:       decision,
		Feedback:       feedback,
		Timestamp:      s.clock.Now(),
	}); err != nil {
		return nil, err
	}

	if decision == domain.DecisionApprove {
		if err := s.Implement(ctx, notificationID); err != nil {
			return nil, err
		}
		// Reload so the caller sees the implemented state.
		return s.notifRepo.GetByID(ctx, notificationID)
	}

	return &notifications[idx], nil
}

// Implement materializes every proposed action of an approved notification
// in order and then marks it implemented. It is exactly-once: a second call
// finds the notification outside the approved state and fails.
//
// A failing action is logged with status failed and does not block the
// remaining actions; the agent log is the source of truth for what
// actually succeeded.
func (s *service) Implement(ctx context.Context, notificationID string) error {
	notifications, err := s.notifRepo.List(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(notifications, notificationID)
	if idx < 0 {
		return fmt.Errorf("notification %s: %w", notificationID, domain.ErrNotFound)
	}

	if notifications[idx].Status != domain.NotifApproved {
		return fmt.Errorf("%w: notification %s is %s, expected %s",
			domain.ErrInvalidTransition, notificationID, notifications[idx].Status, domain.NotifApproved)
	}

	for _, action := range notifications[idx].ProposedActions {
		actionErr := s.applyAction(ctx, action)
		if actionErr != nil {
			actionErr = &domain.ActionError{ActionID: action.ID, Err: actionErr}
			logrus.WithError(actionErr).
				WithFields(logrus.Fields{"notification": notificationID, "action": action.ID}).
				Warn("proposed action failed, continuing")
		}
		s.logAction(ctx, notificationID, action, actionErr)
	}

	notifications[idx].Status = domain.NotifImplemented
	return s.notifRepo.Save(ctx, notifications)
}

// applyAction dispatches one proposed action by type. Only create_campaign
// mutates another collection today; the remaining types are recognized but
// leave nothing behind beyond their log entry.
func (s *service) applyAction(ctx context.Context, action domain.ProposedAction) error {
	switch action.Type {
	case domain.ActionCreateCampaign:
		return s.createCampaign(ctx, action)
	case domain.ActionCreateContent, domain.ActionMoveCard, domain.ActionSendNotification, domain.ActionSchedulePost:
		return nil
	default:
		return nil
	}
}

func (s *service) createCampaign(ctx context.Context, action domain.ProposedAction) error {
	params, err := action.CampaignParameters()
	if err != nil {
		return err
	}

	if _, err := s.clientRepo.GetByID(ctx, params.ClientID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: clientId %q does not resolve", domain.ErrInvalidParameters, params.ClientID)
		}
		return err
	}

	now := s.clock.Now()
	campaign := domain.Campaign{
		ID:             uuid.NewString(),
		ClientID:       params.ClientID,
		Name:           action.Title,
		Status:         domain.CampaignActive,
		Start:          now.Format("2006-01-02"),
		End:            now.AddDate(0, 0, campaignDurationDays).Format("2006-01-02"),
		Budget:         params.Budget,
		KPIs:           domain.CampaignKPIs{},
		Channel:        strings.Join(params.Channels, " + "),
		TargetAudience: params.TargetAudience,
		CreatedBy:      domain.AuthorAgent,
	}

	campaigns, err := s.campaignRepo.List(ctx)
	if err != nil {
		return err
	}
	return s.campaignRepo.Save(ctx, append(campaigns, campaign))
}

func (s *service) logAction(ctx context.Context, notificationID string, action domain.ProposedAction, actionErr error) {
	status := domain.LogSuccess
	justification := fmt.Sprintf("Ação aprovada pelo usuário para notificação %s", notificationID)
	if actionErr != nil {
		status = domain.LogFailed
		justification = fmt.Sprintf("Ação aprovada para notificação %s falhou: %v", notificationID, actionErr)
	}

	entry := domain.AgentLogEntry{
		ID:              uuid.NewString(),
		Timestamp:       s.clock.Now().Format("2006-01-02 15:04:05"),
		Action:          "Implementação: " + action.Title,
		Justification:   justification,
		ExecutionTimeMs: 500,
		EstimatedCost:   implementationCost(),
		Status:          status,
		ClientID:        action.TargetClientID(),
		ActionType:      string(action.Type),
	}

	if err := s.logRepo.Append(ctx, entry); err != nil {
		logrus.WithError(err).WithField("notification", notificationID).Warn("failed to append agent log entry")
	}
}

func indexOf(notifications []domain.ProactiveNotification, id string) int {
	for i := range notifications {
		if notifications[i].ID == id {
			return i
		}
	}
	return -1
}
