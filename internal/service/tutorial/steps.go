package tutorial

func tourSteps() []Step {
	return []Step{
		{
			ID:       "welcome",
			Target:   "app-header",
			Title:    "👋 Bem-vindo ao MARGENT!",
			Content:  "Sou seu agente cognitivo especializado em marketing digital para consultórios. Vou te mostrar como posso revolucionar sua estratégia de marketing!",
			Position: "bottom",
		},
		{
			ID:       "dashboard",
			Target:   "dashboard-metrics",
			Title:    "📊 Dashboard Inteligente",
			Content:  "Aqui você vê métricas em tempo real: leads, conversões, engajamento e ROI. Tudo calculado automaticamente com insights acionáveis.",
			Position: "bottom",
		},
		{
			ID:       "campaigns-nav",
			Target:   "nav-campaigns",
			Title:    "🎯 Gestão de Campanhas",
			Content:  "Vamos ver como gerencio suas campanhas de marketing digital. Clique aqui para explorar!",
			Position: "right",
		},
		{
			ID:       "campaigns-list",
			Target:   "campaigns-table",
			Title:    "📈 Campanhas Otimizadas",
			Content:  "Analiso performance de cada campanha e sugiro otimizações automáticas. Veja como suas campanhas estão performando!",
			Position: "top",
		},
		{
			ID:       "funnel-nav",
			Target:   "nav-funnel",
			Title:    "🔄 Funil de Vendas",
			Content:  "Agora vou mostrar como otimizo seu funil de vendas. Clique para ver a mágica acontecer!",
			Position: "right",
		},
		{
			ID:       "funnel-chart",
			Target:   "funnel-visualization",
			Title:    "🎯 Funil Inteligente",
			Content:  `Identifico gargalos no seu funil e sugiro ações específicas para cada etapa. Veja onde seus leads estão "travando"!`,
			Position: "left",
		},
		{
			ID:       "calendar-nav",
			Target:   "nav-calendar",
			Title:    "📅 Calendário Editorial",
			Content:  "Crio e gerencio seu calendário de conteúdo automaticamente. Vamos ver!",
			Position: "right",
		},
		{
			ID:       "calendar-content",
			Target:   "calendar-view",
			Title:    "✨ Conteúdo Automatizado",
			Content:  "Gero ideias de posts, horários otimizados e até mesmo o copy completo baseado no seu nicho e audiência!",
			Position: "top",
		},
		{
			ID:       "chat-nav",
			Target:   "nav-chat",
			Title:    "💬 Chat Inteligente",
			Content:  "Aqui você conversa comigo em linguagem natural. Posso responder dúvidas, criar estratégias e dar insights!",
			Position: "right",
		},
		{
			ID:       "chat-demo",
			Target:   "chat-input",
			Title:    "🤖 Inteligência Conversacional",
			Content:  `Experimente perguntar: "Como melhorar meu engajamento no Instagram?" ou "Crie uma campanha para meu consultório"`,
			Position: "top",
		},
		{
			ID:       "conclusion",
			Target:   "app-header",
			Title:    "🚀 Pronto para Decolar!",
			Content:  "Agora você conhece o poder do MARGENT! Posso automatizar 80% do seu marketing digital enquanto você foca no que faz de melhor: cuidar dos seus pacientes.",
			Position: "bottom",
		},
	}
}
