package gscdomain

// Dimensões aceitas pela API de Search Analytics
const (
	DimensionDate  = "date"
	DimensionQuery = "query"
	DimensionPage  = "page"
)

// QueryRequest é o corpo da consulta de Search Analytics. As datas são
// renderizadas em YYYY-MM-DD no fuso de referência da API (Pacífico)
type QueryRequest struct {
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Dimensions []string `json:"dimensions,omitempty"`
	RowLimit   int      `json:"rowLimit"`
	StartRow   int      `json:"startRow"`
}

// Row é uma linha da resposta: Keys traz um valor por dimensão solicitada,
// na mesma ordem da requisição
type Row struct {
	Keys        []string `json:"keys"`
	Clicks      float64  `json:"clicks"`
	Impressions float64  `json:"impressions"`
	CTR         float64  `json:"ctr"`
	Position    float64  `json:"position"`
}

// QueryResponse é a resposta da API de Search Analytics
type QueryResponse struct {
	Rows                    []Row  `json:"rows"`
	ResponseAggregationType string `json:"responseAggregationType,omitempty"`
}
