package analyzing

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-campaign-api/infrastructure/integrator/searchconsole"
	gscdomain "github.com/vfg2006/seo-campaign-api/infrastructure/integrator/searchconsole/domain"
	"github.com/vfg2006/seo-campaign-api/infrastructure/repository"
	"github.com/vfg2006/seo-campaign-api/internal/config"
	"github.com/vfg2006/seo-campaign-api/internal/domain"
	"github.com/vfg2006/seo-campaign-api/pkg/utils"
)

const (
	// positionSnapshotDay é o dia do mês usado para o snapshot de posição,
	// fixado para normalizar a volatilidade de fim de mês
	positionSnapshotDay = 28

	// reportingDelayDays é o atraso de divulgação do Search Console: dados de
	// um dia só estão consolidados cerca de três dias depois
	reportingDelayDays = 3

	// maxConcurrentCampaigns limita o fan-out da carga em lote
	maxConcurrentCampaigns = 3
)

// topPage é a página de melhor ranqueamento de uma keyword no mês, escolhida
// pelo maior volume de impressões
type topPage struct {
	URL         string
	Impressions float64
}

// Service implementa o Analyzer: decide quais janelas (site, mês) e
// (site, dia) estão faltando, busca apenas essas janelas no Search Console e
// persiste os rollups de forma idempotente
type Service struct {
	cfg           *config.Config
	integrator    searchconsole.SearchConsoleIntegrator
	campaignRepo  repository.CampaignRepository
	accountRepo   repository.GoogleAccountRepository
	analyticsRepo repository.KeywordAnalyticsRepository
	trafficRepo   repository.TrafficRepository

	// now é injetável para que os testes controlem o "mês corrente"
	now func() time.Time
}

// NewService cria uma nova instância do serviço de ingestão
func NewService(
	cfg *config.Config,
	integrator searchconsole.SearchConsoleIntegrator,
	campaignRepo repository.CampaignRepository,
	accountRepo repository.GoogleAccountRepository,
	analyticsRepo repository.KeywordAnalyticsRepository,
	trafficRepo repository.TrafficRepository,
) *Service {
	return &Service{
		cfg:           cfg,
		integrator:    integrator,
		campaignRepo:  campaignRepo,
		accountRepo:   accountRepo,
		analyticsRepo: analyticsRepo,
		trafficRepo:   trafficRepo,
		now:           time.Now,
	}
}

// FetchAndSaveAnalytics executa a carga mensal completa da campanha. As duas
// fases (keywords e tráfego) são independentes: uma falha de tráfego não
// impede a carga de keywords de completar, e vice-versa
func (s *Service) FetchAndSaveAnalytics(campaignID string, waitForAllData bool) bool {
	campaign, account, err := s.loadCampaignContext(campaignID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaignID,
		}).Error("analyzing: failed to load campaign context")
		return false
	}

	keywordsOK := s.fetchKeywordsData(campaign, account, waitForAllData)
	trafficOK := s.fetchTrafficData(campaign, account, waitForAllData)

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"site":        campaign.SearchConsoleSite,
		"keywords_ok": keywordsOK,
		"traffic_ok":  trafficOK,
	}).Info("analyzing: monthly ingestion finished")

	return keywordsOK && trafficOK
}

// fetchKeywordsData é a fase de keywords da carga mensal: determina os meses
// faltantes a partir do estado persistido e busca apenas esses meses, em ordem
// cronológica estrita, persistindo cada mês antes de avançar para o próximo
func (s *Service) fetchKeywordsData(campaign *domain.Campaign, account *domain.GoogleAccount, waitForAllData bool) bool {
	existing, err := s.analyticsRepo.GetSiteAnalytics(campaign.SearchConsoleSite)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"site":        campaign.SearchConsoleSite,
		}).Error("analyzing: failed to load persisted analytics")
		return false
	}

	root, err := s.analyticsRepo.FindOrCreateRoot(campaign.SearchConsoleSite)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"site":        campaign.SearchConsoleSite,
		}).Error("analyzing: failed to resolve analytics root")
		return false
	}

	// A posição inicial é independente do loop mensal: uma falha aqui não
	// impede a carga dos meses, e a próxima execução tenta de novo
	if err := s.ensureInitialPositions(campaign, account, root, existing); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"site":        campaign.SearchConsoleSite,
		}).Warn("analyzing: failed to record initial positions")
	}

	fetchStart := utils.MonthStart(campaign.StartingDate)
	if year, month, ok := existing.LastDataMonth(); ok {
		fetchStart = utils.NextMonth(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
	}

	endDate := utils.PreviousMonthEnd(s.now())
	if fetchStart.After(endDate) {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"site":        campaign.SearchConsoleSite,
		}).Debug("analyzing: no new month to fetch")
		return true
	}

	for monthStart := fetchStart; !monthStart.After(endDate); monthStart = utils.NextMonth(monthStart) {
		monthEnd := utils.MonthEnd(monthStart)
		if monthEnd.After(endDate) {
			// Mês ainda não fechou por completo; nunca buscar parcial
			break
		}

		if err := s.fetchAndSaveMonth(campaign, account, root, monthStart, monthEnd, waitForAllData); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"site":        campaign.SearchConsoleSite,
				"month":       int(monthStart.Month()),
				"year":        monthStart.Year(),
			}).Error("analyzing: failed to fetch month, stopping at last persisted month")
			// Parar aqui preserva o estado "carregado até o mês X" sem
			// lacunas; a próxima execução retoma deste ponto
			return false
		}
	}

	return true
}

// fetchAndSaveMonth busca as três visões independentes do mês (página de
// melhor ranqueamento, agregado por keyword e snapshot de posição no dia
// fixo) e persiste o merge por keyword. Uma visão sem dados contribui com um
// mapa vazio, nunca derruba o mês
func (s *Service) fetchAndSaveMonth(
	campaign *domain.Campaign,
	account *domain.GoogleAccount,
	root *domain.KeywordAnalyticsRoot,
	monthStart, monthEnd time.Time,
	waitForAllData bool,
) error {
	topPages, err := s.fetchTopRankingPages(campaign, account, monthStart, monthEnd, waitForAllData)
	if err != nil {
		return fmt.Errorf("erro ao buscar páginas de melhor ranqueamento: %w", err)
	}

	aggregates, err := s.fetchKeywordAggregates(campaign, account, monthStart, monthEnd, waitForAllData)
	if err != nil {
		return fmt.Errorf("erro ao buscar agregados por keyword: %w", err)
	}

	snapshot, err := s.fetchPositionSnapshot(campaign, account, monthStart, waitForAllData)
	if err != nil {
		return fmt.Errorf("erro ao buscar snapshot de posição: %w", err)
	}

	saved := 0
	for _, keyword := range campaign.KeywordList() {
		key := strings.ToLower(keyword)

		aggregate, hasAggregate := aggregates[key]
		position, hasSnapshot := snapshot[key]
		page, hasPage := topPages[key]

		if !hasAggregate && !hasSnapshot && !hasPage {
			continue
		}

		record, err := s.analyticsRepo.FindOrCreateKeyword(root.ID, keyword)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"site":    campaign.SearchConsoleSite,
				"keyword": keyword,
			}).Warn("analyzing: failed to resolve keyword record")
			continue
		}

		stat := &domain.MonthlyStat{
			KeywordID: record.ID,
			Month:     int(monthStart.Month()),
			Year:      monthStart.Year(),
		}

		if hasAggregate {
			stat.SearchVolume = int(aggregate.Impressions)
			stat.AverageRank = utils.RoundWithTwoDecimalPlace(aggregate.Position)
		}

		// O snapshot do dia fixo prevalece sobre a média do mês
		if hasSnapshot {
			stat.AverageRank = utils.RoundWithTwoDecimalPlace(position)
		}

		if hasPage {
			stat.TopRankingPageURL = page.URL
		}

		// Erros de persistência são por keyword: registrar e seguir com as
		// demais
		if err := s.analyticsRepo.SaveMonthlyStat(stat); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"site":    campaign.SearchConsoleSite,
				"keyword": keyword,
				"month":   stat.Month,
				"year":    stat.Year,
			}).Warn("analyzing: failed to save monthly stat")
			continue
		}

		saved++
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"site":        campaign.SearchConsoleSite,
		"month":       int(monthStart.Month()),
		"year":        monthStart.Year(),
		"saved":       saved,
	}).Info("analyzing: month persisted")

	return nil
}

// fetchTopRankingPages retorna, por keyword da campanha, a página com mais
// impressões no mês. Empate em impressões mantém a primeira página retornada
// pela API
func (s *Service) fetchTopRankingPages(
	campaign *domain.Campaign,
	account *domain.GoogleAccount,
	startDate, endDate time.Time,
	waitForAllData bool,
) (map[string]topPage, error) {
	rows, err := s.integrator.GetAnalytics(
		account,
		campaign.SearchConsoleSite,
		startDate,
		endDate,
		[]string{gscdomain.DimensionQuery, gscdomain.DimensionPage},
		waitForAllData,
	)
	if err != nil {
		return nil, err
	}

	pages := make(map[string]topPage)
	for _, row := range rows {
		if len(row.Keys) < 2 {
			continue
		}

		keyword := strings.ToLower(row.Keys[0])
		if !campaign.HasKeyword(keyword) {
			continue
		}

		if current, ok := pages[keyword]; ok && row.Impressions <= current.Impressions {
			continue
		}

		pages[keyword] = topPage{
			URL:         decodePageURL(row.Keys[1]),
			Impressions: row.Impressions,
		}
	}

	return pages, nil
}

// fetchKeywordAggregates retorna as métricas agregadas do mês por keyword da
// campanha (dimensão query apenas)
func (s *Service) fetchKeywordAggregates(
	campaign *domain.Campaign,
	account *domain.GoogleAccount,
	startDate, endDate time.Time,
	waitForAllData bool,
) (map[string]gscdomain.Row, error) {
	rows, err := s.integrator.GetAnalytics(
		account,
		campaign.SearchConsoleSite,
		startDate,
		endDate,
		[]string{gscdomain.DimensionQuery},
		waitForAllData,
	)
	if err != nil {
		return nil, err
	}

	aggregates := make(map[string]gscdomain.Row)
	for _, row := range rows {
		if len(row.Keys) < 1 {
			continue
		}

		keyword := strings.ToLower(row.Keys[0])
		if !campaign.HasKeyword(keyword) {
			continue
		}

		aggregates[keyword] = row
	}

	return aggregates, nil
}

// fetchPositionSnapshot busca a posição pontual das keywords no dia fixo do
// mês
func (s *Service) fetchPositionSnapshot(
	campaign *domain.Campaign,
	account *domain.GoogleAccount,
	monthStart time.Time,
	waitForAllData bool,
) (map[string]float64, error) {
	snapshotDate := time.Date(monthStart.Year(), monthStart.Month(), positionSnapshotDay, 0, 0, 0, 0, time.UTC)

	rows, err := s.integrator.GetAnalytics(
		account,
		campaign.SearchConsoleSite,
		snapshotDate,
		snapshotDate,
		[]string{gscdomain.DimensionQuery},
		waitForAllData,
	)
	if err != nil {
		return nil, err
	}

	snapshot := make(map[string]float64)
	for _, row := range rows {
		if len(row.Keys) < 1 {
			continue
		}

		keyword := strings.ToLower(row.Keys[0])
		if !campaign.HasKeyword(keyword) {
			continue
		}

		snapshot[keyword] = row.Position
	}

	return snapshot, nil
}

// ensureInitialPositions grava a posição inicial das keywords que ainda não a
// têm, usando um snapshot pontual na data de início da campanha. A escrita é
// set-once no banco, então execuções concorrentes não sobrescrevem o valor
func (s *Service) ensureInitialPositions(
	campaign *domain.Campaign,
	account *domain.GoogleAccount,
	root *domain.KeywordAnalyticsRoot,
	existing *domain.SiteAnalytics,
) error {
	if !existing.MissingInitialPosition() {
		return nil
	}

	rows, err := s.integrator.GetAnalytics(
		account,
		campaign.SearchConsoleSite,
		campaign.StartingDate,
		campaign.StartingDate,
		[]string{gscdomain.DimensionQuery},
		false,
	)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		// Sem dados na data de início; a próxima execução tenta de novo
		return nil
	}

	for _, row := range rows {
		if len(row.Keys) < 1 {
			continue
		}

		keyword := row.Keys[0]
		if !campaign.HasKeyword(keyword) {
			continue
		}

		record, err := s.analyticsRepo.FindOrCreateKeyword(root.ID, keyword)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"site":    campaign.SearchConsoleSite,
				"keyword": keyword,
			}).Warn("analyzing: failed to resolve keyword record for initial position")
			continue
		}

		if err := s.analyticsRepo.SetInitialPosition(record.ID, utils.RoundWithTwoDecimalPlace(row.Position)); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"site":    campaign.SearchConsoleSite,
				"keyword": keyword,
			}).Warn("analyzing: failed to set initial position")
		}
	}

	return nil
}

// fetchTrafficData é a fase de tráfego da carga mensal: agrega cliques,
// impressões, CTR e posição do site inteiro (consulta sem dimensões) para os
// meses ainda não persistidos
func (s *Service) fetchTrafficData(campaign *domain.Campaign, account *domain.GoogleAccount, waitForAllData bool) bool {
	existing, err := s.trafficRepo.GetSiteTraffic(campaign.SearchConsoleSite)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"site":        campaign.SearchConsoleSite,
		}).Error("analyzing: failed to load persisted traffic")
		return false
	}

	root, err := s.trafficRepo.FindOrCreateRoot(campaign.SearchConsoleSite)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"site":        campaign.SearchConsoleSite,
		}).Error("analyzing: failed to resolve traffic root")
		return false
	}

	fetchStart := utils.MonthStart(campaign.StartingDate)
	if existing != nil && len(existing.Monthly) > 0 {
		// A projeção vem ordenada por (ano, mês) decrescente
		latest := existing.Monthly[0]
		fetchStart = utils.NextMonth(time.Date(latest.Year, time.Month(latest.Month), 1, 0, 0, 0, 0, time.UTC))
	}

	endDate := utils.PreviousMonthEnd(s.now())

	for monthStart := fetchStart; !monthStart.After(endDate); monthStart = utils.NextMonth(monthStart) {
		monthEnd := utils.MonthEnd(monthStart)
		if monthEnd.After(endDate) {
			break
		}

		rows, err := s.integrator.GetAnalytics(
			account,
			campaign.SearchConsoleSite,
			monthStart,
			monthEnd,
			nil,
			waitForAllData,
		)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"site":        campaign.SearchConsoleSite,
				"month":       int(monthStart.Month()),
				"year":        monthStart.Year(),
			}).Error("analyzing: failed to fetch monthly traffic")
			return false
		}

		if len(rows) == 0 {
			continue
		}

		// Sem dimensões a API devolve uma única linha agregada do site
		row := rows[0]
		traffic := &domain.MonthlyTraffic{
			RootID:      root.ID,
			Month:       int(monthStart.Month()),
			Year:        monthStart.Year(),
			Clicks:      int(row.Clicks),
			Impressions: int(row.Impressions),
			CTR:         utils.RoundWithTwoDecimalPlace(row.CTR * 100),
			Position:    utils.RoundWithTwoDecimalPlace(row.Position),
		}

		if err := s.trafficRepo.SaveMonthlyTraffic(traffic); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"site":        campaign.SearchConsoleSite,
				"month":       traffic.Month,
				"year":        traffic.Year,
			}).Error("analyzing: failed to save monthly traffic")
			return false
		}
	}

	return true
}

// FetchAndSaveDailyData busca as posições diárias das keywords para a data
// alvo (hoje menos o atraso de divulgação). A escrita é write-once por
// (keyword, data): dias já gravados são pulados, nunca sobrescritos
func (s *Service) FetchAndSaveDailyData(campaignID string) bool {
	campaign, account, err := s.loadCampaignContext(campaignID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaignID,
		}).Error("analyzing: failed to load campaign context")
		return false
	}

	root, err := s.analyticsRepo.FindOrCreateRoot(campaign.SearchConsoleSite)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"site":        campaign.SearchConsoleSite,
		}).Error("analyzing: failed to resolve analytics root")
		return false
	}

	target := s.targetDate()
	if err := s.saveDailyPositions(campaign, account, root, target, target); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"site":        campaign.SearchConsoleSite,
			"date":        target.Format(time.DateOnly),
		}).Error("analyzing: failed to save daily positions")
		return false
	}

	return true
}

// FetchAndSaveDailyTraffic grava o agregado de tráfego do site para a data
// alvo
func (s *Service) FetchAndSaveDailyTraffic(campaignID string) bool {
	campaign, account, err := s.loadCampaignContext(campaignID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaignID,
		}).Error("analyzing: failed to load campaign context")
		return false
	}

	root, err := s.trafficRepo.FindOrCreateRoot(campaign.SearchConsoleSite)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"site":        campaign.SearchConsoleSite,
		}).Error("analyzing: failed to resolve traffic root")
		return false
	}

	target := s.targetDate()
	rows, err := s.integrator.GetAnalytics(account, campaign.SearchConsoleSite, target, target, nil, false)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"site":        campaign.SearchConsoleSite,
			"date":        target.Format(time.DateOnly),
		}).Error("analyzing: failed to fetch daily traffic")
		return false
	}

	if len(rows) == 0 {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"site":        campaign.SearchConsoleSite,
			"date":        target.Format(time.DateOnly),
		}).Debug("analyzing: no daily traffic for target date")
		return true
	}

	row := rows[0]
	traffic := &domain.DailyTraffic{
		RootID:      root.ID,
		Date:        target,
		Clicks:      int(row.Clicks),
		Impressions: int(row.Impressions),
		CTR:         utils.RoundWithTwoDecimalPlace(row.CTR * 100),
		Position:    utils.RoundWithTwoDecimalPlace(row.Position),
	}

	if err := s.trafficRepo.SaveDailyTraffic(traffic); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"site":        campaign.SearchConsoleSite,
			"date":        target.Format(time.DateOnly),
		}).Error("analyzing: failed to save daily traffic")
		return false
	}

	return true
}

// FetchAndSaveHistoricalDailyData preenche lacunas de posições diárias mês a
// mês, do início da campanha até a data alvo. Dias já persistidos são pulados
// pela checagem write-once, então reexecutar o backfill é seguro
func (s *Service) FetchAndSaveHistoricalDailyData(campaignID string) bool {
	campaign, account, err := s.loadCampaignContext(campaignID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaignID,
		}).Error("analyzing: failed to load campaign context")
		return false
	}

	target := s.targetDate()
	if campaign.StartingDate.After(target) {
		return true
	}

	root, err := s.analyticsRepo.FindOrCreateRoot(campaign.SearchConsoleSite)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"site":        campaign.SearchConsoleSite,
		}).Error("analyzing: failed to resolve analytics root")
		return false
	}

	for monthStart := utils.MonthStart(campaign.StartingDate); !monthStart.After(target); monthStart = utils.NextMonth(monthStart) {
		windowStart := monthStart
		if campaign.StartingDate.After(windowStart) {
			windowStart = campaign.StartingDate
		}

		windowEnd := utils.MonthEnd(monthStart)
		if windowEnd.After(target) {
			windowEnd = target
		}

		if err := s.saveDailyPositions(campaign, account, root, windowStart, windowEnd); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"site":        campaign.SearchConsoleSite,
				"month":       int(monthStart.Month()),
				"year":        monthStart.Year(),
			}).Error("analyzing: failed to backfill daily positions")
			return false
		}
	}

	return true
}

// saveDailyPositions busca as linhas (data, query) da janela, filtra para o
// conjunto de keywords da campanha e grava uma estatística diária por
// (keyword, data) ainda inexistente
func (s *Service) saveDailyPositions(
	campaign *domain.Campaign,
	account *domain.GoogleAccount,
	root *domain.KeywordAnalyticsRoot,
	startDate, endDate time.Time,
) error {
	rows, err := s.integrator.GetAnalytics(
		account,
		campaign.SearchConsoleSite,
		startDate,
		endDate,
		[]string{gscdomain.DimensionDate, gscdomain.DimensionQuery},
		false,
	)
	if err != nil {
		return err
	}

	for _, row := range rows {
		if len(row.Keys) < 2 {
			continue
		}

		date, err := time.Parse(time.DateOnly, row.Keys[0])
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"site": campaign.SearchConsoleSite,
				"key":  row.Keys[0],
			}).Warn("analyzing: unparseable date key in response row")
			continue
		}

		keyword := row.Keys[1]
		if !campaign.HasKeyword(keyword) {
			continue
		}

		record, err := s.analyticsRepo.FindOrCreateKeyword(root.ID, keyword)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"site":    campaign.SearchConsoleSite,
				"keyword": keyword,
			}).Warn("analyzing: failed to resolve keyword record")
			continue
		}

		exists, err := s.analyticsRepo.HasDailyStat(record.ID, date)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"site":    campaign.SearchConsoleSite,
				"keyword": keyword,
				"date":    date.Format(time.DateOnly),
			}).Warn("analyzing: failed to check existing daily stat")
			continue
		}

		if exists {
			continue
		}

		stat := &domain.DailyStat{
			KeywordID:    record.ID,
			Date:         date,
			AverageRank:  utils.RoundWithTwoDecimalPlace(row.Position),
			SearchVolume: int(row.Impressions),
		}

		if err := s.analyticsRepo.SaveDailyStat(stat); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"site":    campaign.SearchConsoleSite,
				"keyword": keyword,
				"date":    date.Format(time.DateOnly),
			}).Warn("analyzing: failed to save daily stat")
			continue
		}
	}

	return nil
}

// FetchAllCampaignsData executa a carga mensal de todas as campanhas ativas
// com fan-out limitado. Cada campanha falha ou sucede isoladamente; o lote
// nunca aborta por causa de uma campanha
func (s *Service) FetchAllCampaignsData(waitForAllData bool) *BatchResult {
	campaigns, err := s.campaignRepo.ListCampaigns([]domain.CampaignStatus{domain.CampaignStatusActive})
	if err != nil {
		logrus.WithError(err).Error("analyzing: failed to list active campaigns")
		return &BatchResult{}
	}

	result := &BatchResult{Total: len(campaigns)}

	semaphore := make(chan struct{}, maxConcurrentCampaigns)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, campaign := range campaigns {
		wg.Add(1)

		go func(campaign *domain.Campaign) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			ok := s.FetchAndSaveAnalytics(campaign.ID, waitForAllData)

			mu.Lock()
			if ok {
				result.Succeeded++
			} else {
				result.Failed++
				result.FailedCampaignIDs = append(result.FailedCampaignIDs, campaign.ID)
			}
			mu.Unlock()
		}(campaign)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"total":     result.Total,
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
	}).Info("analyzing: batch ingestion finished")

	return result
}

// loadCampaignContext resolve a campanha e a conta do Google associada,
// validando que ambas existem e que a conta está ativa
func (s *Service) loadCampaignContext(campaignID string) (*domain.Campaign, *domain.GoogleAccount, error) {
	campaign, err := s.campaignRepo.GetCampaignByID(campaignID)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao buscar campanha: %w", err)
	}
	if campaign == nil {
		return nil, nil, fmt.Errorf("campanha não encontrada: %s", campaignID)
	}

	account, err := s.accountRepo.GetByID(campaign.GoogleAccountID)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao buscar conta do Google: %w", err)
	}
	if account == nil {
		return nil, nil, fmt.Errorf("conta do Google não encontrada: %s", campaign.GoogleAccountID)
	}
	if !account.IsActive {
		return nil, nil, fmt.Errorf("conta do Google inativa: %s", account.ID)
	}

	return campaign, account, nil
}

// targetDate é a data alvo das cargas diárias: hoje menos o atraso de
// divulgação, à meia-noite UTC
func (s *Service) targetDate() time.Time {
	target := s.now().AddDate(0, 0, -reportingDelayDays)
	return time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
}

// decodePageURL desfaz o percent-encoding das URLs de página retornadas pela
// API. URL que não decodifica é mantida como veio
func decodePageURL(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
