package domain

import "time"

// Decision is a human verdict on a pending notification.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// AgentFeedback is a write-once audit record of a decision taken on a
// notification. Records are only ever appended, never mutated or deleted.
type AgentFeedback struct {
	NotificationID string    `json:"notificationId"`
	ActionID       *string   `json:"actionId,omitempty"`
	Decision       Decision  `json:"decision"`
	Feedback       *string   `json:"feedback,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}
