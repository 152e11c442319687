package chat

import "strings"

// Service is the conversational responder: stateless, case-insensitive
// substring matching over an ordered rule table. First match wins.
type Service interface {
	Respond(input string) string
}

type rule struct {
	keywords []string
	reply    string
}

type service struct {
	rules    []rule
	fallback string
}

func NewService() Service {
	return &service{
		rules: []rule{
			{
				keywords: []string{"dia das mães", "dia das maes"},
				reply:    "Detectei que o Dia das Mães está se aproximando! Baseado na análise dos nossos clientes, sugiro criar campanhas personalizadas: para a Clínica Dermatologia ABC, uma campanha de rejuvenescimento; para o Consultório Sorriso, promoção de clareamento dental; e para a Fisioterapia Movimento, conteúdo sobre cuidados posturais para mães. Posso implementar essas campanhas automaticamente?",
			},
			{
				keywords: []string{"cliente"},
				reply:    "Atualmente gerencio 3 clientes ativos: Clínica Dermatologia ABC (estética), Consultório Sorriso (odontologia) e Fisioterapia Movimento (fisioterapia). Cada cliente tem estratégias personalizadas baseadas em seu público-alvo e orçamento. Sobre qual cliente gostaria de saber mais?",
			},
			{
				keywords: []string{"funil", "leads"},
				reply:    "Analisando os funis de todos os clientes... A Dermatologia ABC tem 245 leads no topo do funil com 7% de conversão, o Consultório Sorriso tem 180 leads com melhor taxa de conversão (7%), e a Fisioterapia tem 95 leads mas com boa qualificação (8% de conversão). Sugiro otimizar o meio do funil para a Dermatologia ABC.",
			},
		},
		fallback: "Como especialista em marketing para múltiplos clientes da área da saúde, posso ajudar com estratégias personalizadas para cada consultório. Sobre qual cliente ou estratégia gostaria de conversar?",
	}
}

func (s *service) Respond(input string) string {
	lower := strings.ToLower(input)
	for _, r := range s.rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.reply
			}
		}
	}
	return s.fallback
}
