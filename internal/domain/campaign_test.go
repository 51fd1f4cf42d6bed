package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaign_KeywordList(t *testing.T) {
	tests := []struct {
		name     string
		keywords string
		expected []string
	}{
		{
			name:     "lista simples delimitada por quebras de linha",
			keywords: "óculos de grau\nóculos de sol",
			expected: []string{"óculos de grau", "óculos de sol"},
		},
		{
			name:     "linhas vazias e espaços nas bordas são descartados",
			keywords: "  óculos de grau  \n\n\n óculos de sol \n",
			expected: []string{"óculos de grau", "óculos de sol"},
		},
		{
			name:     "duplicatas são descartadas ignorando caixa",
			keywords: "Óculos de Grau\nóculos de grau\nÓCULOS DE GRAU",
			expected: []string{"Óculos de Grau"},
		},
		{
			name:     "campo vazio gera lista vazia",
			keywords: "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign := &Campaign{Keywords: tt.keywords}
			assert.Equal(t, tt.expected, campaign.KeywordList())
		})
	}
}

func TestCampaign_HasKeyword(t *testing.T) {
	campaign := &Campaign{Keywords: "Óculos de Grau\nlentes de contato"}

	// A comparação ignora caixa e espaços nas bordas
	assert.True(t, campaign.HasKeyword("óculos de grau"))
	assert.True(t, campaign.HasKeyword("  ÓCULOS DE GRAU  "))
	assert.True(t, campaign.HasKeyword("lentes de contato"))
	assert.False(t, campaign.HasKeyword("armação de óculos"))
}
