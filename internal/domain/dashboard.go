package domain

type DashboardMetric struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change int    `json:"change"`
	Icon   string `json:"icon"`
}

type DashboardAlert struct {
	ID       int     `json:"id"`
	Type     string  `json:"type"`
	Message  string  `json:"message"`
	Time     string  `json:"time"`
	ClientID *string `json:"clientId,omitempty"`
}

// DashboardData is derived entirely from the client and campaign
// collections; it is recomputed on every read and never persisted.
type DashboardData struct {
	Metrics []DashboardMetric `json:"metrics"`
	Alerts  []DashboardAlert  `json:"alerts"`
}
