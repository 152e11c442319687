package domain

type Campaign struct {
	ID             string         `json:"id"`
	ClientID       string         `json:"clientId" validate:"required"`
	Name           string         `json:"name" validate:"required"`
	Status         CampaignStatus `json:"status" validate:"oneof=active paused ended"`
	Start          string         `json:"start"`
	End            string         `json:"end"`
	Budget         float64        `json:"budget" validate:"min=0"`
	KPIs           CampaignKPIs   `json:"kpis"`
	Channel        string         `json:"channel"`
	TargetAudience []string       `json:"targetAudience,omitempty"`
	CreatedBy      Author         `json:"createdBy" validate:"oneof=agent human"`
}

type CampaignStatus string

const (
	CampaignActive CampaignStatus = "active"
	CampaignPaused CampaignStatus = "paused"
	CampaignEnded  CampaignStatus = "ended"
)

// Author distinguishes records materialized by the agent from ones
// entered by a person.
type Author string

const (
	AuthorAgent Author = "agent"
	AuthorHuman Author = "human"
)

type CampaignKPIs struct {
	Leads      int     `json:"leads" validate:"min=0"`
	ConvRate   float64 `json:"convRate" validate:"min=0,max=1"`
	Engagement float64 `json:"engagement" validate:"min=0,max=1"`
}
