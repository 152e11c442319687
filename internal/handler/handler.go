package handler

import (
	"margent-backend/internal/repository"
	"margent-backend/internal/service"
)

type Handlers struct {
	Client        *ClientHandler
	Campaign      *CampaignHandler
	Funnel        *FunnelHandler
	CalendarEvent *CalendarEventHandler
	Kanban        *KanbanHandler
	Notification  *NotificationHandler
	Agent         *AgentHandler
	Dashboard     *DashboardHandler
	Chat          *ChatHandler
	Tutorial      *TutorialHandler
}

func NewHandlers(repos *repository.Repositories, services *service.Services) *Handlers {
	return &Handlers{
		Client:        NewClientHandler(repos.Client),
		Campaign:      NewCampaignHandler(repos.Campaign),
		Funnel:        NewFunnelHandler(repos.Funnel),
		CalendarEvent: NewCalendarEventHandler(repos.CalendarEvent),
		Kanban:        NewKanbanHandler(repos.Kanban),
		Notification:  NewNotificationHandler(repos.Notification, repos.Feedback, services.Workflow),
		Agent:         NewAgentHandler(repos.AgentLog, repos.Memory, repos.Reasoning),
		Dashboard:     NewDashboardHandler(services.Dashboard),
		Chat:          NewChatHandler(services.Chat),
		Tutorial:      NewTutorialHandler(services.Tutorial),
	}
}
