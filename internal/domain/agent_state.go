package domain

// AgentMemory is the agent's working and long-term memory snapshot.
type AgentMemory struct {
	WorkingMemory  WorkingMemory  `json:"workingMemory"`
	LongTermMemory LongTermMemory `json:"longTermMemory"`
}

type WorkingMemory struct {
	Context          string   `json:"context"`
	Tasks            []string `json:"tasks"`
	IdentifiedIssues []string `json:"identifiedIssues"`
	ActiveClients    []string `json:"activeClients"`
}

type LongTermMemory struct {
	UserPreferences []string            `json:"userPreferences"`
	TrelloHistory   []string            `json:"trelloHistory"`
	Patterns        []string            `json:"patterns"`
	ClientInsights  map[string][]string `json:"clientInsights"`
}

// AgentReasoning is the agent's last perceive-reason-act-reflect trace.
type AgentReasoning struct {
	Perception         []string `json:"perception"`
	ReasoningPlanning  []string `json:"reasoningPlanning"`
	PlannedAction      []string `json:"plannedAction"`
	FeedbackReflection []string `json:"feedbackReflection"`
	TriggerEvent       *string  `json:"triggerEvent,omitempty"`
	AffectedClients    []string `json:"affectedClients,omitempty"`
}
