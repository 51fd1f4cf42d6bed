package domain

import (
	"strings"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "ACTIVE"
	CampaignStatusPaused   CampaignStatus = "PAUSED"
	CampaignStatusFinished CampaignStatus = "FINISHED"
)

// Campaign representa uma campanha de SEO. O conjunto de keywords é armazenado
// como texto delimitado por quebras de linha, no mesmo formato usado pelo painel
type Campaign struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	SearchConsoleSite string         `json:"search_console_site"`
	Keywords          string         `json:"keywords"`
	GoogleAccountID   string         `json:"google_account_id"`
	StartingDate      time.Time      `json:"starting_date"`
	Status            CampaignStatus `json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// KeywordList converte o campo Keywords em uma lista normalizada,
// descartando linhas vazias, espaços nas bordas e duplicatas
func (c *Campaign) KeywordList() []string {
	lines := strings.Split(c.Keywords, "\n")

	keywords := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))

	for _, line := range lines {
		keyword := strings.TrimSpace(line)
		if keyword == "" {
			continue
		}
		if _, ok := seen[strings.ToLower(keyword)]; ok {
			continue
		}
		seen[strings.ToLower(keyword)] = struct{}{}
		keywords = append(keywords, keyword)
	}

	return keywords
}

// HasKeyword verifica se a keyword pertence à campanha. A comparação é
// case-insensitive porque o Search Console normaliza as queries em minúsculas
func (c *Campaign) HasKeyword(keyword string) bool {
	target := strings.ToLower(strings.TrimSpace(keyword))
	for _, k := range c.KeywordList() {
		if strings.ToLower(k) == target {
			return true
		}
	}
	return false
}
