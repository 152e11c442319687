package repository

import (
	"encoding/json"

	"margent-backend/internal/domain"
)

// Built-in datasets served when a collection was never written to the
// store. cmd/seeder writes the same datasets explicitly for a data reset.

func ptr[T any](v T) *T {
	return &v
}

func DefaultClients() []domain.Client {
	return []domain.Client{
		{
			ID:             "client-1",
			Name:           "Clínica Dermatologia ABC",
			Type:           domain.ClientAesthetics,
			PrimaryColor:   "#3B82F6",
			Location:       "São Paulo, SP",
			ContactPerson:  "Dra. Maria Silva",
			Email:          "contato@dermaabc.com.br",
			Phone:          "(11) 99999-1234",
			Services:       []string{"Dermatologia Clínica", "Estética Facial", "Tratamentos a Laser"},
			TargetAudience: []string{"Mulheres 25-45 anos", "Classe A/B", "Interessadas em estética"},
			MonthlyBudget:  5000,
			ActiveChannels: []string{"Instagram", "Facebook", "Google Ads"},
			JoinDate:       "2024-01-15",
			Status:         domain.ClientActive,
			Preferences: domain.ClientPreferences{
				NotificationFrequency: "daily",
				AutoApproveActions:    false,
				PreferredPostingTimes: []string{"19:00", "21:00"},
				ContentStyle:          domain.StyleProfessional,
			},
		},
		{
			ID:             "client-2",
			Name:           "Consultório Odontológico Sorriso",
			Type:           domain.ClientDentist,
			PrimaryColor:   "#10B981",
			Location:       "Rio de Janeiro, RJ",
			ContactPerson:  "Dr. João Santos",
			Email:          "contato@sorriso.com.br",
			Phone:          "(21) 99999-5678",
			Services:       []string{"Ortodontia", "Implantes", "Clareamento Dental", "Limpeza"},
			TargetAudience: []string{"Famílias", "Adultos 30-60 anos", "Crianças e adolescentes"},
			MonthlyBudget:  3000,
			ActiveChannels: []string{"Facebook", "Google Ads", "WhatsApp"},
			JoinDate:       "2024-03-10",
			Status:         domain.ClientActive,
			Preferences: domain.ClientPreferences{
				NotificationFrequency: "weekly",
				AutoApproveActions:    true,
				PreferredPostingTimes: []string{"18:00", "20:00"},
				ContentStyle:          domain.StyleEducational,
			},
		},
		{
			ID:             "client-3",
			Name:           "Fisioterapia Movimento",
			Type:           domain.ClientPhysiotherapy,
			PrimaryColor:   "#F59E0B",
			Location:       "Belo Horizonte, MG",
			ContactPerson:  "Ft. Ana Costa",
			Email:          "contato@movimento.com.br",
			Phone:          "(31) 99999-9012",
			Services:       []string{"Fisioterapia Ortopédica", "RPG", "Pilates Clínico"},
			TargetAudience: []string{"Atletas", "Idosos", "Pessoas com dores crônicas"},
			MonthlyBudget:  2000,
			ActiveChannels: []string{"Instagram", "Facebook"},
			JoinDate:       "2024-02-20",
			Status:         domain.ClientTrial,
			Preferences: domain.ClientPreferences{
				NotificationFrequency: "weekly",
				AutoApproveActions:    false,
				PreferredPostingTimes: []string{"17:00", "19:00"},
				ContentStyle:          domain.StyleEducational,
			},
		},
	}
}

func DefaultCampaigns() []domain.Campaign {
	return []domain.Campaign{
		{
			ID:             "1",
			ClientID:       "client-1",
			Name:           "Campanha Verão - Tratamentos Faciais",
			Status:         domain.CampaignActive,
			Start:          "2025-05-01",
			End:            "2025-06-30",
			Budget:         2500,
			KPIs:           domain.CampaignKPIs{Leads: 85, ConvRate: 0.18, Engagement: 0.12},
			Channel:        "Instagram + Facebook",
			TargetAudience: []string{"Mulheres 25-40 anos"},
			CreatedBy:      domain.AuthorAgent,
		},
		{
			ID:             "2",
			ClientID:       "client-1",
			Name:           "Promoção Limpeza de Pele",
			Status:         domain.CampaignPaused,
			Start:          "2025-04-15",
			End:            "2025-05-15",
			Budget:         800,
			KPIs:           domain.CampaignKPIs{Leads: 42, ConvRate: 0.25, Engagement: 0.08},
			Channel:        "Facebook",
			TargetAudience: []string{"Mulheres 20-35 anos"},
			CreatedBy:      domain.AuthorHuman,
		},
		{
			ID:             "3",
			ClientID:       "client-2",
			Name:           "Campanha Ortodontia Invisível",
			Status:         domain.CampaignActive,
			Start:          "2025-05-10",
			End:            "2025-07-10",
			Budget:         1800,
			KPIs:           domain.CampaignKPIs{Leads: 34, ConvRate: 0.15, Engagement: 0.09},
			Channel:        "Google Ads + Facebook",
			TargetAudience: []string{"Adultos 25-45 anos"},
			CreatedBy:      domain.AuthorAgent,
		},
		{
			ID:             "4",
			ClientID:       "client-3",
			Name:           "Pilates Clínico - Dores nas Costas",
			Status:         domain.CampaignActive,
			Start:          "2025-04-20",
			End:            "2025-06-20",
			Budget:         1200,
			KPIs:           domain.CampaignKPIs{Leads: 28, ConvRate: 0.22, Engagement: 0.14},
			Channel:        "Instagram + Facebook",
			TargetAudience: []string{"Adultos 30-60 anos"},
			CreatedBy:      domain.AuthorAgent,
		},
	}
}

func DefaultFunnelData() map[string]domain.FunnelData {
	return map[string]domain.FunnelData{
		"client-1": {
			ClientID: "client-1",
			Stages: []domain.FunnelStage{
				{Name: "Descoberta", Leads: 245, Percentage: 100},
				{Name: "Interesse", Leads: 156, Percentage: 64},
				{Name: "Consideração", Leads: 89, Percentage: 36},
				{Name: "Decisão", Leads: 34, Percentage: 14},
				{Name: "Conversão", Leads: 18, Percentage: 7},
			},
			RecentLeads: []domain.Lead{
				{ID: 1, ClientID: "client-1", Name: "Maria Silva", Source: "Instagram", Stage: "Interesse", Date: "2025-06-08", Phone: "(11) 99999-1234", Email: ptr("maria@email.com"), InterestedService: ptr("Botox")},
				{ID: 2, ClientID: "client-1", Name: "Ana Costa", Source: "Facebook", Stage: "Consideração", Date: "2025-06-07", Phone: "(11) 99999-5678", Email: ptr("ana@email.com"), InterestedService: ptr("Limpeza de Pele")},
			},
		},
		"client-2": {
			ClientID: "client-2",
			Stages: []domain.FunnelStage{
				{Name: "Descoberta", Leads: 180, Percentage: 100},
				{Name: "Interesse", Leads: 120, Percentage: 67},
				{Name: "Consideração", Leads: 65, Percentage: 36},
				{Name: "Decisão", Leads: 25, Percentage: 14},
				{Name: "Conversão", Leads: 12, Percentage: 7},
			},
			RecentLeads: []domain.Lead{
				{ID: 3, ClientID: "client-2", Name: "João Santos", Source: "Google Ads", Stage: "Decisão", Date: "2025-06-06", Phone: "(21) 99999-9012", Email: ptr("joao@email.com"), InterestedService: ptr("Ortodontia")},
			},
		},
		"client-3": {
			ClientID: "client-3",
			Stages: []domain.FunnelStage{
				{Name: "Descoberta", Leads: 95, Percentage: 100},
				{Name: "Interesse", Leads: 68, Percentage: 72},
				{Name: "Consideração", Leads: 42, Percentage: 44},
				{Name: "Decisão", Leads: 18, Percentage: 19},
				{Name: "Conversão", Leads: 8, Percentage: 8},
			},
			RecentLeads: []domain.Lead{
				{ID: 4, ClientID: "client-3", Name: "Pedro Lima", Source: "Instagram", Stage: "Conversão", Date: "2025-06-05", Phone: "(31) 99999-3456", Email: ptr("pedro@email.com"), InterestedService: ptr("Pilates")},
			},
		},
	}
}

func DefaultNotifications() []domain.ProactiveNotification {
	return []domain.ProactiveNotification{
		{
			ID:             "notif-mothers-day",
			Type:           domain.NotifSuggestion,
			Message:        "Oportunidade: Dia das Mães se aproximando",
			Timestamp:      "2025-06-10 08:00:00",
			ActionProposal: ptr("Criar campanhas personalizadas para o Dia das Mães para todos os clientes ativos"),
			Justification:  ptr(`Detectado evento sazonal "Dia das Mães" (12/05/2025) se aproximando. Análise histórica mostra aumento de 40% em conversões durante esta data para clínicas de estética e 25% para consultórios odontológicos.`),
			TriggerEvent:   ptr("seasonal_event_detected"),
			Status:         domain.NotifPending,
			EstimatedImpact: &domain.EstimatedImpact{
				PotentialLeads:  ptr(150),
				EstimatedROI:    ptr(3.2),
				TimeToImplement: ptr("2-3 dias"),
			},
			ProposedActions: []domain.ProposedAction{
				{
					ID:          "action-1",
					Type:        domain.ActionCreateCampaign,
					Title:       "Campanha Dia das Mães - Clínica Dermatologia ABC",
					Description: "Campanha focada em tratamentos de rejuvenescimento para presentear mães",
					// Kept compacted so the stored blob round-trips byte for byte.
					Parameters: json.RawMessage(`{"clientId":"client-1","budget":1500,"duration":"7 dias","channels":["Instagram","Facebook"],"targetAudience":["Filhos/filhas 25-45 anos","Mulheres 45-65 anos"]}`),
					EstimatedCost: 1500,
					EstimatedTime: "1 dia",
				},
				{
					ID:            "action-2",
					Type:          domain.ActionCreateCampaign,
					Title:         "Campanha Dia das Mães - Consultório Sorriso",
					Description:   "Promoção especial de clareamento dental para mães",
					Parameters:    json.RawMessage(`{"clientId":"client-2","budget":800,"duration":"5 dias","channels":["Facebook","Google Ads"],"targetAudience":["Famílias","Mulheres 35-55 anos"]}`),
					EstimatedCost: 800,
					EstimatedTime: "1 dia",
				},
				{
					ID:            "action-3",
					Type:          domain.ActionCreateContent,
					Title:         "Conteúdo Educativo - Cuidados com a Postura",
					Description:   "Posts sobre cuidados posturais para mães que trabalham",
					Parameters:    json.RawMessage(`{"clientId":"client-3","contentType":"carousel","quantity":5,"channels":["Instagram","Facebook"]}`),
					EstimatedCost: 0,
					EstimatedTime: "2 horas",
				},
			},
		},
		{
			ID:             "notif-2",
			Type:           domain.NotifWarning,
			Message:        "Carga de trabalho desequilibrada - Cliente Dermatologia ABC",
			Timestamp:      "2025-06-09 17:00:00",
			ActionProposal: ptr("Redistribuir tarefas entre membros da equipe para evitar sobrecarga."),
			Justification:  ptr(`Cliente "Dermatologia ABC" com 8 tarefas "Em Andamento" e 3 "A Fazer" com prazo curto.`),
			ClientID:       ptr("client-1"),
			Status:         domain.NotifPending,
		},
		{
			ID:             "notif-3",
			Type:           domain.NotifInfo,
			Message:        "Novo lead qualificado - Consultório Sorriso",
			Timestamp:      "2025-06-10 09:30:00",
			ActionProposal: ptr(`Entrar em contato com o lead "Carlos" para agendar consulta.`),
			Justification:  ptr(`Lead "Carlos" preencheu formulário de "Agendamento de Consulta" no site.`),
			ClientID:       ptr("client-2"),
			Status:         domain.NotifPending,
		},
	}
}

func DefaultCalendarEvents() []domain.CalendarEvent {
	return []domain.CalendarEvent{
		{
			ID:        "1",
			ClientID:  "client-1",
			Title:     "Dicas de Skincare Matinal",
			Date:      "2025-06-10",
			Channel:   "Instagram",
			Status:    "Agendado",
			Type:      "Post",
			Content:   ptr("Post educativo sobre rotina matinal de cuidados com a pele"),
			CreatedBy: domain.AuthorAgent,
		},
		{
			ID:        "2",
			ClientID:  "client-1",
			Title:     "Depoimento Cliente - Tratamento Acne",
			Date:      "2025-06-11",
			Channel:   "Facebook",
			Status:    "Rascunho",
			Type:      "Story",
			Content:   ptr("Story com depoimento de cliente satisfeita"),
			CreatedBy: domain.AuthorHuman,
		},
		{
			ID:        "3",
			ClientID:  "client-2",
			Title:     "Dicas de Higiene Bucal",
			Date:      "2025-06-12",
			Channel:   "Instagram",
			Status:    "Planejado",
			Type:      "Post",
			Content:   ptr("Post educativo sobre escovação correta"),
			CreatedBy: domain.AuthorAgent,
		},
	}
}

func DefaultKanbanBoards() []domain.KanbanBoard {
	return []domain.KanbanBoard{
		{
			ID:       "board-1",
			Title:    "Marketing Digital - Clínica Dermatologia ABC",
			ClientID: ptr("client-1"),
			Lists: []domain.KanbanList{
				{
					ID:    "list-1",
					Title: "A Fazer",
					Cards: []domain.KanbanCard{
						{
							ID:             "card-1",
							Title:          "Criar conteúdo para Dia das Mães",
							Description:    ptr("Post para Instagram e Facebook sobre tratamentos para presentear mães"),
							Tags:           []string{"Conteúdo", "Social Media"},
							DueDate:        ptr("2025-05-05"),
							ClientID:       ptr("client-1"),
							Priority:       ptr("high"),
							EstimatedHours: ptr(3),
						},
					},
				},
				{
					ID:    "list-2",
					Title: "Em Andamento",
					Cards: []domain.KanbanCard{
						{
							ID:             "card-2",
							Title:          "Otimizar campanha de verão",
							Description:    ptr("Ajustar segmentação e criativos da campanha atual"),
							Tags:           []string{"Campanha", "Tráfego Pago"},
							Members:        []string{"Ana"},
							ClientID:       ptr("client-1"),
							Priority:       ptr("medium"),
							EstimatedHours: ptr(5),
						},
					},
				},
			},
		},
		{
			ID:       "board-2",
			Title:    "Marketing Digital - Consultório Sorriso",
			ClientID: ptr("client-2"),
			Lists: []domain.KanbanList{
				{
					ID:    "list-3",
					Title: "Planejamento",
					Cards: []domain.KanbanCard{
						{
							ID:             "card-3",
							Title:          "Campanha ortodontia invisível",
							Description:    ptr("Planejar campanha para público jovem adulto"),
							Tags:           []string{"Campanha", "Planejamento"},
							ClientID:       ptr("client-2"),
							Priority:       ptr("medium"),
							EstimatedHours: ptr(4),
						},
					},
				},
			},
		},
	}
}

func DefaultAgentMemory() domain.AgentMemory {
	return domain.AgentMemory{
		WorkingMemory: domain.WorkingMemory{
			Context: "Gestão de Marketing para Múltiplos Clientes - Foco em Campanhas Sazonais",
			Tasks: []string{
				"Criar campanhas do Dia das Mães para todos os clientes",
				"Otimizar funil de conversão da Clínica Dermatologia ABC",
				"Analisar performance das campanhas do Consultório Sorriso",
			},
			IdentifiedIssues: []string{
				"Taxa de conversão baixa no meio do funil - Dermatologia ABC",
				"Necessidade de mais conteúdo educativo - Fisioterapia Movimento",
			},
			ActiveClients: []string{"Clínica Dermatologia ABC", "Consultório Odontológico Sorriso"},
		},
		LongTermMemory: domain.LongTermMemory{
			UserPreferences: []string{
				"Notificações detalhadas sobre oportunidades sazonais",
				"Aprovação manual para campanhas acima de R$ 2.000",
				"Relatórios semanais por cliente",
			},
			TrelloHistory: []string{
				`Cartão "Campanha Páscoa - Dermatologia ABC" concluído em 2025-04-20`,
				`Board "Consultório Sorriso" criado em 2025-03-10`,
				`Campanha "Ortodontia Invisível" aprovada em 2025-05-15`,
			},
			Patterns: []string{
				"Campanhas sazonais têm 40% mais engajamento",
				"Clientes de estética respondem melhor a conteúdo visual",
				"Consultórios odontológicos preferem conteúdo educativo",
			},
			ClientInsights: map[string][]string{
				"client-1": {
					"Público responde bem a antes/depois",
					"Melhor horário de postagem: 19h-21h",
					"Instagram gera mais leads que Facebook",
				},
				"client-2": {
					"Conteúdo educativo tem alta taxa de engajamento",
					"Famílias são o público principal",
					"Google Ads converte melhor que redes sociais",
				},
				"client-3": {
					"Público busca soluções para dores específicas",
					"Depoimentos de pacientes são muito eficazes",
					"Instagram Stories funcionam bem para dicas rápidas",
				},
			},
		},
	}
}

func DefaultAgentReasoning() domain.AgentReasoning {
	return domain.AgentReasoning{
		Perception: []string{
			"Detectado evento sazonal: Dia das Mães (12/05/2025) em 2 dias",
			`Análise histórica: aumento de 40% em buscas por "presente para mãe" + "estética"`,
			"Cliente Dermatologia ABC: orçamento disponível R$ 2.500",
			"Cliente Consultório Sorriso: preferência por campanhas educativas",
			"Cliente Fisioterapia Movimento: status trial, orçamento limitado",
		},
		ReasoningPlanning: []string{
			"Priorizar clientes com maior potencial de ROI para campanhas do Dia das Mães",
			"Personalizar abordagem: estética (rejuvenescimento), odonto (clareamento), fisio (cuidados posturais)",
			"Considerar orçamentos e preferências de cada cliente",
			"Criar timeline de implementação: 2 dias para aprovação + 1 dia para execução",
		},
		PlannedAction: []string{
			"Criar notificação proativa detalhando oportunidade do Dia das Mães",
			"Propor 3 ações específicas: campanha estética, campanha odonto, conteúdo fisio",
			"Incluir estimativas de ROI e impacto para cada cliente",
			"Aguardar feedback do usuário antes de implementar",
		},
		FeedbackReflection: []string{
			"Monitorar taxa de aprovação das sugestões sazonais",
			"Avaliar performance das campanhas implementadas vs. estimativas",
			"Ajustar algoritmo de detecção de oportunidades baseado no feedback",
		},
		TriggerEvent:    ptr("seasonal_event_mothers_day"),
		AffectedClients: []string{"client-1", "client-2", "client-3"},
	}
}

func DefaultAgentLogs() []domain.AgentLogEntry {
	return []domain.AgentLogEntry{
		{
			ID:              "log-1",
			Timestamp:       "2025-06-10 08:00:00",
			Action:          "Detecção de oportunidade sazonal: Dia das Mães",
			Justification:   "Sistema detectou proximidade do Dia das Mães e analisou potencial de campanhas para todos os clientes.",
			ExecutionTimeMs: 2500,
			EstimatedCost:   domain.EstimatedCost{Tokens: ptr(800), APICalls: ptr(3), USD: ptr(0.08)},
			Status:          domain.LogSuccess,
			ActionType:      "notification",
		},
		{
			ID:              "log-2",
			Timestamp:       "2025-06-09 14:30:00",
			Action:          "Otimização de campanha - Dermatologia ABC",
			Justification:   `Identificado baixo CTR (1.2%) na campanha "Tratamentos Faciais". Sugerindo ajustes na segmentação.`,
			ExecutionTimeMs: 1200,
			EstimatedCost:   domain.EstimatedCost{Tokens: ptr(500), APICalls: ptr(2), USD: ptr(0.05)},
			Status:          domain.LogSuccess,
			ClientID:        ptr("client-1"),
			ActionType:      "optimization",
		},
		{
			ID:              "log-3",
			Timestamp:       "2025-06-09 10:15:00",
			Action:          "Criação de conteúdo educativo - Consultório Sorriso",
			Justification:   "Geradas 5 ideias de posts sobre higiene bucal baseadas nas preferências do cliente.",
			ExecutionTimeMs: 800,
			EstimatedCost:   domain.EstimatedCost{Tokens: ptr(300), USD: ptr(0.03)},
			Status:          domain.LogSuccess,
			ClientID:        ptr("client-2"),
			ActionType:      "content_generation",
		},
		{
			ID:              "log-4",
			Timestamp:       "2025-06-08 16:45:00",
			Action:          "Análise de leads - Fisioterapia Movimento",
			Justification:   "Analisados 15 novos leads. Identificados 3 leads qualificados para pilates clínico.",
			ExecutionTimeMs: 600,
			EstimatedCost:   domain.EstimatedCost{Tokens: ptr(200), USD: ptr(0.02)},
			Status:          domain.LogSuccess,
			ClientID:        ptr("client-3"),
			ActionType:      "lead_management",
		},
	}
}
