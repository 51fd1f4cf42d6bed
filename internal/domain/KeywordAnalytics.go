package domain

import (
	"time"
)

// KeywordAnalyticsRoot é a raiz de agregação por site: todas as keywords e
// estatísticas de um site vivem abaixo dela. Criada de forma preguiçosa na
// primeira escrita (upsert atômico por site_url)
type KeywordAnalyticsRoot struct {
	ID        string    `json:"id"`
	SiteURL   string    `json:"site_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// KeywordRecord é o registro de uma keyword sob uma raiz. InitialPosition é
// definida uma única vez (primeiro fetch bem-sucedido na data de início da
// campanha) e nunca sobrescrita depois
type KeywordRecord struct {
	ID              string    `json:"id"`
	RootID          string    `json:"root_id"`
	Keyword         string    `json:"keyword"`
	InitialPosition *float64  `json:"initial_position"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MonthlyStat é o rollup mensal de uma keyword, única por (keyword, mês, ano)
type MonthlyStat struct {
	ID                int64     `json:"id"`
	KeywordID         string    `json:"keyword_id"`
	Month             int       `json:"month"`
	Year              int       `json:"year"`
	AverageRank       float64   `json:"average_rank"`
	SearchVolume      int       `json:"search_volume"`
	TopRankingPageURL string    `json:"top_ranking_page_url"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DailyStat é a posição diária de uma keyword, única por (keyword, data).
// Semântica write-once: uma vez gravada para uma data, não é reescrita
type DailyStat struct {
	ID           int64     `json:"id"`
	KeywordID    string    `json:"keyword_id"`
	Date         time.Time `json:"date"`
	AverageRank  float64   `json:"average_rank"`
	SearchVolume int       `json:"search_volume"`
	CreatedAt    time.Time `json:"created_at"`
}

// KeywordAnalytics é a projeção de leitura tipada de uma keyword com seus
// rollups mensais, ordenados por (ano, mês) decrescente
type KeywordAnalytics struct {
	KeywordID       string         `json:"keyword_id"`
	Keyword         string         `json:"keyword"`
	InitialPosition *float64       `json:"initial_position"`
	MonthlyStats    []*MonthlyStat `json:"monthly_stats"`
}

// SiteAnalytics agrupa a projeção completa de um site
type SiteAnalytics struct {
	Root     *KeywordAnalyticsRoot `json:"root"`
	Keywords []*KeywordAnalytics   `json:"keywords"`
}

// LastDataMonth retorna o último (ano, mês) com qualquer estatística mensal
// persistida. O ok é falso quando ainda não existe nenhum dado
func (s *SiteAnalytics) LastDataMonth() (year int, month time.Month, ok bool) {
	if s == nil {
		return 0, 0, false
	}

	for _, keyword := range s.Keywords {
		for _, stat := range keyword.MonthlyStats {
			if !ok || stat.Year > year || (stat.Year == year && time.Month(stat.Month) > month) {
				year = stat.Year
				month = time.Month(stat.Month)
				ok = true
			}
		}
	}

	return year, month, ok
}

// HasMonth indica se já existe estatística persistida para o (ano, mês) em
// qualquer keyword do site
func (s *SiteAnalytics) HasMonth(year int, month time.Month) bool {
	if s == nil {
		return false
	}

	for _, keyword := range s.Keywords {
		for _, stat := range keyword.MonthlyStats {
			if stat.Year == year && time.Month(stat.Month) == month {
				return true
			}
		}
	}

	return false
}

// MissingInitialPosition indica se alguma keyword da campanha ainda não tem
// posição inicial registrada
func (s *SiteAnalytics) MissingInitialPosition() bool {
	if s == nil || len(s.Keywords) == 0 {
		return true
	}

	for _, keyword := range s.Keywords {
		if keyword.InitialPosition == nil {
			return true
		}
	}

	return false
}
