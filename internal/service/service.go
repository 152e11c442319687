package service

import (
	"margent-backend/internal/pkg/clock"
	"margent-backend/internal/repository"
	"margent-backend/internal/service/chat"
	"margent-backend/internal/service/dashboard"
	"margent-backend/internal/service/tutorial"
	"margent-backend/internal/service/workflow"
)

type Services struct {
	Workflow  workflow.Service
	Dashboard dashboard.Service
	Chat      chat.Service
	Tutorial  tutorial.Service
}

func NewServices(repos *repository.Repositories, clk clock.Clock) *Services {
	return &Services{
		Workflow: workflow.NewService(
			repos.Notification,
			repos.Client,
			repos.Campaign,
			repos.Feedback,
			repos.AgentLog,
			clk,
		),
		Dashboard: dashboard.NewService(repos.Client, repos.Campaign),
		Chat:      chat.NewService(),
		Tutorial:  tutorial.NewService(),
	}
}
