package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"margent-backend/internal/domain"
	"margent-backend/internal/repository"
)

// Service derives the dashboard overview from the client and campaign
// collections. Everything is recomputed on every call; there is no cache
// to invalidate.
type Service interface {
	GetOverview(ctx context.Context) (*domain.DashboardData, error)
}

type service struct {
	clientRepo   repository.ClientRepository
	campaignRepo repository.CampaignRepository
}

func NewService(clientRepo repository.ClientRepository, campaignRepo repository.CampaignRepository) Service {
	return &service{clientRepo: clientRepo, campaignRepo: campaignRepo}
}

func (s *service) GetOverview(ctx context.Context) (*domain.DashboardData, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.campaignRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	totalLeads := 0
	avgConversion := 0.0
	avgEngagement := 0.0
	for _, c := range campaigns {
		totalLeads += c.KPIs.Leads
		avgConversion += c.KPIs.ConvRate
		avgEngagement += c.KPIs.Engagement
	}
	// Guard the empty collection; the averages stay 0 instead of NaN.
	if len(campaigns) > 0 {
		avgConversion /= float64(len(campaigns))
		avgEngagement /= float64(len(campaigns))
	}

	activeClients := 0
	for _, c := range clients {
		if c.Status == domain.ClientActive {
			activeClients++
		}
	}

	return &domain.DashboardData{
		Metrics: []domain.DashboardMetric{
			{Title: "Total de Leads", Value: strconv.Itoa(totalLeads), Change: 12, Icon: "users"},
			{Title: "Taxa de Conversão Média", Value: fmt.Sprintf("%.1f%%", avgConversion*100), Change: 3, Icon: "trending-up"},
			{Title: "Engajamento Médio", Value: fmt.Sprintf("%.1f%%", avgEngagement*100), Change: 8, Icon: "heart"},
			{Title: "Clientes Ativos", Value: strconv.Itoa(activeClients), Change: 0, Icon: "building"},
		},
		Alerts: s.buildAlerts(totalLeads),
	}, nil
}

// buildAlerts produces the illustrative alert feed. These are static
// heuristics rendered through templates, not a detection pipeline.
func (s *service) buildAlerts(totalLeads int) []domain.DashboardAlert {
	client1 := "client-1"
	return []domain.DashboardAlert{
		{ID: 1, Type: "info", Message: fmt.Sprintf("%d novos leads aguardando contato", totalLeads), Time: "2h", ClientID: &client1},
		{ID: 2, Type: "warning", Message: `Campanha "Botox" com baixo CTR (1.2%)`, Time: "4h", ClientID: &client1},
		{ID: 3, Type: "success", Message: "Meta mensal de leads atingida", Time: "1d"},
	}
}
