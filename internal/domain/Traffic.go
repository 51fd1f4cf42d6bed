package domain

import (
	"time"
)

// TrafficRoot é a raiz de agregação de tráfego por site, análoga à raiz de
// keywords. Uma por site_url, criada no primeiro upsert
type TrafficRoot struct {
	ID        string    `json:"id"`
	SiteURL   string    `json:"site_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MonthlyTraffic é o agregado mensal de tráfego do site, único por (raiz, mês, ano)
type MonthlyTraffic struct {
	ID          int64     `json:"id"`
	RootID      string    `json:"root_id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	Clicks      int       `json:"clicks"`
	Impressions int       `json:"impressions"`
	CTR         float64   `json:"ctr"`
	Position    float64   `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DailyTraffic é o agregado diário de tráfego do site, único por (raiz, data)
type DailyTraffic struct {
	ID          int64     `json:"id"`
	RootID      string    `json:"root_id"`
	Date        time.Time `json:"date"`
	Clicks      int       `json:"clicks"`
	Impressions int       `json:"impressions"`
	CTR         float64   `json:"ctr"`
	Position    float64   `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SiteTraffic agrupa a projeção de tráfego de um site para leitura
type SiteTraffic struct {
	Root    *TrafficRoot      `json:"root"`
	Monthly []*MonthlyTraffic `json:"monthly"`
	Daily   []*DailyTraffic   `json:"daily"`
}
