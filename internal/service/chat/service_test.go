package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespond_KeywordRouting(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"Mothers Day With Accents", "O que você sugere para o Dia das Mães?", "Dia das Mães está se aproximando"},
		{"Mothers Day Without Accents", "ideias para o dia das maes", "Dia das Mães está se aproximando"},
		{"Clients", "me fale sobre os clientes", "3 clientes ativos"},
		{"Funnel", "como está o funil?", "Analisando os funis"},
		{"Leads", "quantos LEADS temos?", "Analisando os funis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, svc.Respond(tt.input), tt.contains)
		})
	}
}

func TestRespond_FirstMatchWins(t *testing.T) {
	svc := NewService()

	// "dia das mães" and "cliente" both appear; the earlier rule answers.
	reply := svc.Respond("crie uma campanha de dia das mães para o cliente")
	assert.Contains(t, reply, "Dia das Mães está se aproximando")
}

func TestRespond_Fallback(t *testing.T) {
	svc := NewService()

	reply := svc.Respond("bom dia")
	assert.True(t, strings.Contains(reply, "especialista em marketing"))
}
