package domain

type FunnelStage struct {
	Name       string `json:"name"`
	Leads      int    `json:"leads"`
	Percentage int    `json:"percentage"`
}

type Lead struct {
	ID                int     `json:"id"`
	ClientID          string  `json:"clientId"`
	Name              string  `json:"name"`
	Source            string  `json:"source"`
	Stage             string  `json:"stage"`
	Date              string  `json:"date"`
	Phone             string  `json:"phone"`
	Email             *string `json:"email,omitempty"`
	InterestedService *string `json:"interestedService,omitempty"`
}

type FunnelData struct {
	ClientID    string        `json:"clientId"`
	Stages      []FunnelStage `json:"stages"`
	RecentLeads []Lead        `json:"recentLeads"`
}
