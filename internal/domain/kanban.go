package domain

type KanbanCard struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    *string  `json:"description,omitempty"`
	Members        []string `json:"members,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	DueDate        *string  `json:"dueDate,omitempty"`
	ClientID       *string  `json:"clientId,omitempty"`
	Priority       *string  `json:"priority,omitempty"`
	EstimatedHours *int     `json:"estimatedHours,omitempty"`
}

type KanbanList struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Cards []KanbanCard `json:"cards"`
}

type KanbanBoard struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	ClientID   *string      `json:"clientId,omitempty"`
	Lists      []KanbanList `json:"lists"`
	IsTemplate bool         `json:"isTemplate,omitempty"`
}
