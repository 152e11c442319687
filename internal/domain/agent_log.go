package domain

// AgentLogEntry is an append-only record of an executed agent action.
// Entries are created only as a side effect of implementing approved
// notifications or of the agent's own background activity; the log is the
// source of truth for which actions actually succeeded.
type AgentLogEntry struct {
	ID              string        `json:"id"`
	Timestamp       string        `json:"timestamp"`
	Action          string        `json:"action"`
	Justification   string        `json:"justification"`
	ExecutionTimeMs int           `json:"executionTimeMs"`
	EstimatedCost   EstimatedCost `json:"estimatedCost"`
	Status          LogStatus     `json:"status"`
	ClientID        *string       `json:"clientId,omitempty"`
	ActionType      string        `json:"actionType"`
}

type LogStatus string

const (
	LogSuccess LogStatus = "success"
	LogFailed  LogStatus = "failed"
	LogPending LogStatus = "pending"
	LogInfo    LogStatus = "info"
)

// EstimatedCost is a synthetic cost estimate attached to log entries.
type EstimatedCost struct {
	Tokens   *int     `json:"tokens,omitempty"`
	APICalls *int     `json:"apiCalls,omitempty"`
	USD      *float64 `json:"usd,omitempty"`
}
