package domain

type Client struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Type           ClientType        `json:"type"`
	Logo           *string           `json:"logo,omitempty"`
	PrimaryColor   string            `json:"primaryColor"`
	Location       string            `json:"location"`
	ContactPerson  string            `json:"contactPerson"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Services       []string          `json:"services"`
	TargetAudience []string          `json:"targetAudience"`
	MonthlyBudget  float64           `json:"monthlyBudget" validate:"min=0"`
	ActiveChannels []string          `json:"activeChannels"`
	JoinDate       string            `json:"joinDate"`
	Status         ClientStatus      `json:"status" validate:"oneof=active paused trial"`
	Preferences    ClientPreferences `json:"preferences"`
}

type ClientType string

const (
	ClientClinic        ClientType = "clinic"
	ClientDentist       ClientType = "dentist"
	ClientAesthetics    ClientType = "aesthetics"
	ClientPhysiotherapy ClientType = "physiotherapy"
	ClientPsychology    ClientType = "psychology"
	ClientOther         ClientType = "other"
)

type ClientStatus string

const (
	ClientActive ClientStatus = "active"
	ClientPaused ClientStatus = "paused"
	ClientTrial  ClientStatus = "trial"
)

type ClientPreferences struct {
	NotificationFrequency string       `json:"notificationFrequency"`
	AutoApproveActions    bool         `json:"autoApproveActions"`
	PreferredPostingTimes []string     `json:"preferredPostingTimes"`
	ContentStyle          ContentStyle `json:"contentStyle"`
}

type ContentStyle string

const (
	StyleProfessional ContentStyle = "professional"
	StyleCasual       ContentStyle = "casual"
	StyleEducational  ContentStyle = "educational"
)
