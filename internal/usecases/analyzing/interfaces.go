package analyzing

// Analyzer define a interface de ingestão incremental de dados do Search
// Console. Os métodos retornam um booleano de sucesso consumido pelos
// agendadores para contadores de execução; a recuperação real é o próximo
// ciclo, que retoma do último estado persistido
type Analyzer interface {
	// FetchAndSaveAnalytics executa a carga mensal completa da campanha:
	// rollups de keywords e agregados de tráfego dos meses faltantes
	FetchAndSaveAnalytics(campaignID string, waitForAllData bool) bool

	// FetchAndSaveDailyData busca as posições diárias das keywords da
	// campanha para a data alvo (hoje menos o atraso de divulgação)
	FetchAndSaveDailyData(campaignID string) bool

	// FetchAndSaveDailyTraffic grava o agregado de tráfego do site para a
	// data alvo
	FetchAndSaveDailyTraffic(campaignID string) bool

	// FetchAndSaveHistoricalDailyData preenche lacunas de posições diárias
	// desde o início da campanha até a data alvo
	FetchAndSaveHistoricalDailyData(campaignID string) bool

	// FetchAllCampaignsData executa a carga mensal para todas as campanhas
	// ativas, com falhas isoladas por campanha
	FetchAllCampaignsData(waitForAllData bool) *BatchResult
}

// BatchResult resume uma execução em lote sobre as campanhas ativas
type BatchResult struct {
	Total             int      `json:"total"`
	Succeeded         int      `json:"succeeded"`
	Failed            int      `json:"failed"`
	FailedCampaignIDs []string `json:"failed_campaign_ids,omitempty"`
}
