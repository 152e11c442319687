package domain

type CalendarEvent struct {
	ID        string  `json:"id"`
	ClientID  string  `json:"clientId"`
	Title     string  `json:"title"`
	Date      string  `json:"date"`
	Channel   string  `json:"channel"`
	Status    string  `json:"status"`
	Type      string  `json:"type"`
	Content   *string `json:"content,omitempty"`
	CreatedBy Author  `json:"createdBy"`
}
