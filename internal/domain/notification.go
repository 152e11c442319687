package domain

import (
	"encoding/json"
	"fmt"
)

// ProactiveNotification is a suggestion or alert raised by the agent that
// waits for a human decision. Status moves along pending -> approved ->
// implemented, or pending -> rejected; rejected and implemented are terminal.
type ProactiveNotification struct {
	ID              string             `json:"id"`
	Type            NotificationType   `json:"type"`
	Message         string             `json:"message"`
	Timestamp       string             `json:"timestamp"`
	ActionProposal  *string            `json:"actionProposal,omitempty"`
	Justification   *string            `json:"justification,omitempty"`
	ClientID        *string            `json:"clientId,omitempty"`
	TriggerEvent    *string            `json:"triggerEvent,omitempty"`
	Status          NotificationStatus `json:"status"`
	EstimatedImpact *EstimatedImpact   `json:"estimatedImpact,omitempty"`
	ProposedActions []ProposedAction   `json:"proposedActions,omitempty"`
}

type NotificationType string

const (
	NotifInfo       NotificationType = "info"
	NotifWarning    NotificationType = "warning"
	NotifCritical   NotificationType = "critical"
	NotifSuggestion NotificationType = "suggestion"
)

type NotificationStatus string

const (
	NotifPending     NotificationStatus = "pending"
	NotifApproved    NotificationStatus = "approved"
	NotifRejected    NotificationStatus = "rejected"
	NotifImplemented NotificationStatus = "implemented"
)

type EstimatedImpact struct {
	PotentialLeads  *int     `json:"potentialLeads,omitempty"`
	EstimatedROI    *float64 `json:"estimatedROI,omitempty"`
	TimeToImplement *string  `json:"timeToImplement,omitempty"`
}

// ProposedAction is one concrete change a notification offers to make on
// approval. Parameters is a raw bag tagged by Type; use the typed accessors
// to decode it.
type ProposedAction struct {
	ID            string          `json:"id"`
	Type          ActionType      `json:"type"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Parameters    json.RawMessage `json:"parameters,omitempty"`
	EstimatedCost float64         `json:"estimatedCost,omitempty"`
	EstimatedTime string          `json:"estimatedTime,omitempty"`
}

type ActionType string

const (
	ActionCreateCampaign   ActionType = "create_campaign"
	ActionCreateContent    ActionType = "create_content"
	ActionMoveCard         ActionType = "move_card"
	ActionSendNotification ActionType = "send_notification"
	ActionSchedulePost     ActionType = "schedule_post"
)

// CampaignParams is the parameter record of a create_campaign action.
type CampaignParams struct {
	ClientID       string   `json:"clientId"`
	Budget         float64  `json:"budget"`
	Duration       string   `json:"duration,omitempty"`
	Channels       []string `json:"channels"`
	TargetAudience []string `json:"targetAudience,omitempty"`
}

// ContentParams is the parameter record of a create_content action.
type ContentParams struct {
	ClientID    string   `json:"clientId"`
	ContentType string   `json:"contentType"`
	Quantity    int      `json:"quantity"`
	Channels    []string `json:"channels"`
}

// CampaignParameters decodes the parameter bag of a create_campaign action.
func (a ProposedAction) CampaignParameters() (CampaignParams, error) {
	var p CampaignParams
	if a.Type != ActionCreateCampaign {
		return p, fmt.Errorf("%w: action %s is %s, not %s", ErrInvalidParameters, a.ID, a.Type, ActionCreateCampaign)
	}
	if len(a.Parameters) == 0 {
		return p, fmt.Errorf("%w: action %s has no parameters", ErrInvalidParameters, a.ID)
	}
	if err := json.Unmarshal(a.Parameters, &p); err != nil {
		return p, fmt.Errorf("%w: action %s: %v", ErrInvalidParameters, a.ID, err)
	}
	if p.ClientID == "" {
		return p, fmt.Errorf("%w: action %s: clientId is required", ErrInvalidParameters, a.ID)
	}
	if p.Budget < 0 {
		return p, fmt.Errorf("%w: action %s: budget must be non-negative", ErrInvalidParameters, a.ID)
	}
	return p, nil
}

// TargetClientID extracts the clientId from the parameter bag without
// interpreting the rest of it. Returns nil when the bag has none.
func (a ProposedAction) TargetClientID() *string {
	if len(a.Parameters) == 0 {
		return nil
	}
	var probe struct {
		ClientID *string `json:"clientId"`
	}
	if err := json.Unmarshal(a.Parameters, &probe); err != nil {
		return nil
	}
	if probe.ClientID == nil || *probe.ClientID == "" {
		return nil
	}
	return probe.ClientID
}
