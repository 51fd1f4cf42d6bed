package analyzing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	scmocks "github.com/vfg2006/seo-campaign-api/infrastructure/integrator/searchconsole/mocks"
	"github.com/vfg2006/seo-campaign-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seo-campaign-api/internal/config"
	"github.com/vfg2006/seo-campaign-api/internal/domain"

	gscdomain "github.com/vfg2006/seo-campaign-api/infrastructure/integrator/searchconsole/domain"
)

const testSite = "https://oticavisaocentral.com.br/"

type serviceMocks struct {
	integrator    *scmocks.MockSearchConsoleIntegrator
	campaignRepo  *mocks.MockCampaignRepository
	accountRepo   *mocks.MockGoogleAccountRepository
	analyticsRepo *mocks.MockKeywordAnalyticsRepository
	trafficRepo   *mocks.MockTrafficRepository
}

func newTestService(ctrl *gomock.Controller, now time.Time) (*Service, *serviceMocks) {
	m := &serviceMocks{
		integrator:    scmocks.NewMockSearchConsoleIntegrator(ctrl),
		campaignRepo:  mocks.NewMockCampaignRepository(ctrl),
		accountRepo:   mocks.NewMockGoogleAccountRepository(ctrl),
		analyticsRepo: mocks.NewMockKeywordAnalyticsRepository(ctrl),
		trafficRepo:   mocks.NewMockTrafficRepository(ctrl),
	}

	service := &Service{
		cfg:           &config.Config{},
		integrator:    m.integrator,
		campaignRepo:  m.campaignRepo,
		accountRepo:   m.accountRepo,
		analyticsRepo: m.analyticsRepo,
		trafficRepo:   m.trafficRepo,
		now:           func() time.Time { return now },
	}

	return service, m
}

func testCampaign(startingDate time.Time) *domain.Campaign {
	return &domain.Campaign{
		ID:                "CMP001",
		Name:              "Ótica Visão Central",
		SearchConsoleSite: testSite,
		Keywords:          "óculos de grau\nóculos de sol",
		GoogleAccountID:   "GA001",
		StartingDate:      startingDate,
		Status:            domain.CampaignStatusActive,
	}
}

func testAccount() *domain.GoogleAccount {
	return &domain.GoogleAccount{
		ID:       "GA001",
		Email:    "analytics@agencia.com.br",
		IsActive: true,
	}
}

// siteAnalyticsWithMonths monta uma projeção persistida com rollups para os
// meses informados, com posição inicial já registrada
func siteAnalyticsWithMonths(months ...time.Time) *domain.SiteAnalytics {
	initialPosition := 7.5
	keyword := &domain.KeywordAnalytics{
		KeywordID:       "KW001",
		Keyword:         "óculos de grau",
		InitialPosition: &initialPosition,
	}

	for _, m := range months {
		keyword.MonthlyStats = append(keyword.MonthlyStats, &domain.MonthlyStat{
			KeywordID: "KW001",
			Month:     int(m.Month()),
			Year:      m.Year(),
		})
	}

	return &domain.SiteAnalytics{
		Root:     &domain.KeywordAnalyticsRoot{ID: "ROOT01", SiteURL: testSite},
		Keywords: []*domain.KeywordAnalytics{keyword},
	}
}

func siteTrafficWithMonths(months ...time.Time) *domain.SiteTraffic {
	traffic := &domain.SiteTraffic{
		Root: &domain.TrafficRoot{ID: "TROOT1", SiteURL: testSite},
	}

	// A projeção real vem ordenada por (ano, mês) decrescente
	for i := len(months) - 1; i >= 0; i-- {
		traffic.Monthly = append(traffic.Monthly, &domain.MonthlyTraffic{
			RootID: "TROOT1",
			Month:  int(months[i].Month()),
			Year:   months[i].Year(),
		})
	}

	return traffic
}

func expectCampaignContext(m *serviceMocks, campaign *domain.Campaign, account *domain.GoogleAccount) {
	m.campaignRepo.EXPECT().GetCampaignByID(campaign.ID).Return(campaign, nil)
	m.accountRepo.EXPECT().GetByID(campaign.GoogleAccountID).Return(account, nil)
}

func TestFetchAndSaveAnalytics_CargaInicialCompleta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Campanha começou em janeiro e estamos em abril: janeiro, fevereiro e
	// março devem ser buscados; abril (mês corrente) nunca
	now := time.Date(2024, 4, 10, 15, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	campaign := testCampaign(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	account := testAccount()
	root := &domain.KeywordAnalyticsRoot{ID: "ROOT01", SiteURL: testSite}
	trafficRoot := &domain.TrafficRoot{ID: "TROOT1", SiteURL: testSite}

	expectCampaignContext(m, campaign, account)

	m.analyticsRepo.EXPECT().GetSiteAnalytics(testSite).Return(nil, nil)
	m.analyticsRepo.EXPECT().FindOrCreateRoot(testSite).Return(root, nil)
	m.analyticsRepo.EXPECT().
		FindOrCreateKeyword(root.ID, "óculos de grau").
		Return(&domain.KeywordRecord{ID: "KW001", RootID: root.ID, Keyword: "óculos de grau"}, nil).
		AnyTimes()

	m.trafficRepo.EXPECT().GetSiteTraffic(testSite).Return(nil, nil)
	m.trafficRepo.EXPECT().FindOrCreateRoot(testSite).Return(trafficRoot, nil)

	m.integrator.EXPECT().
		GetAnalytics(account, testSite, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *domain.GoogleAccount, _ string, start, end time.Time, dimensions []string, _ bool) ([]gscdomain.Row, error) {
			switch {
			case dimensions == nil:
				// Agregado mensal de tráfego do site
				return []gscdomain.Row{{Clicks: 120, Impressions: 4000, CTR: 0.03, Position: 12.345}}, nil

			case len(dimensions) == 2 && dimensions[1] == gscdomain.DimensionPage:
				// Páginas por keyword: a de maior volume de impressões vence
				return []gscdomain.Row{
					{Keys: []string{"óculos de grau", "https://oticavisaocentral.com.br/p%C3%A1gina-antiga"}, Impressions: 300},
					{Keys: []string{"óculos de grau", "https://oticavisaocentral.com.br/oculos-de-grau"}, Impressions: 800},
				}, nil

			case len(dimensions) == 1 && start.Equal(campaign.StartingDate) && end.Equal(campaign.StartingDate):
				// Snapshot da posição inicial: sem dados na data de início
				return nil, nil

			case len(dimensions) == 1 && start.Day() == 28:
				// Snapshot de posição no dia fixo do mês
				return []gscdomain.Row{{Keys: []string{"óculos de grau"}, Position: 5.2}}, nil

			case len(dimensions) == 1:
				// Agregado mensal por keyword
				return []gscdomain.Row{{Keys: []string{"óculos de grau"}, Clicks: 40, Impressions: 500, CTR: 0.08, Position: 8.456}}, nil
			}

			t.Fatalf("consulta inesperada: dims=%v start=%s end=%s", dimensions, start, end)
			return nil, nil
		}).
		AnyTimes()

	var savedStats []*domain.MonthlyStat
	m.analyticsRepo.EXPECT().
		SaveMonthlyStat(gomock.Any()).
		DoAndReturn(func(stat *domain.MonthlyStat) error {
			savedStats = append(savedStats, stat)
			return nil
		}).
		Times(3)

	var savedTraffic []*domain.MonthlyTraffic
	m.trafficRepo.EXPECT().
		SaveMonthlyTraffic(gomock.Any()).
		DoAndReturn(func(traffic *domain.MonthlyTraffic) error {
			savedTraffic = append(savedTraffic, traffic)
			return nil
		}).
		Times(3)

	ok := service.FetchAndSaveAnalytics("CMP001", false)
	assert.True(t, ok)

	// Meses persistidos em ordem cronológica estrita
	require.Len(t, savedStats, 3)
	for i, expectedMonth := range []int{1, 2, 3} {
		assert.Equal(t, expectedMonth, savedStats[i].Month)
		assert.Equal(t, 2024, savedStats[i].Year)
		assert.Equal(t, "KW001", savedStats[i].KeywordID)

		// O snapshot do dia 28 prevalece sobre a média do mês
		assert.Equal(t, 5.2, savedStats[i].AverageRank)
		// O volume de busca vem das impressões do agregado
		assert.Equal(t, 500, savedStats[i].SearchVolume)
		// A página com mais impressões vence, com percent-encoding desfeito
		assert.Equal(t, "https://oticavisaocentral.com.br/oculos-de-grau", savedStats[i].TopRankingPageURL)
	}

	require.Len(t, savedTraffic, 3)
	for i, expectedMonth := range []int{1, 2, 3} {
		assert.Equal(t, expectedMonth, savedTraffic[i].Month)
		assert.Equal(t, 120, savedTraffic[i].Clicks)
		assert.Equal(t, 4000, savedTraffic[i].Impressions)
		// CTR armazenado como percentual com duas casas
		assert.Equal(t, 3.0, savedTraffic[i].CTR)
		assert.Equal(t, 12.35, savedTraffic[i].Position)
	}
}

func TestFetchAndSaveAnalytics_RetomaDoUltimoMesPersistido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	campaign := testCampaign(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	account := testAccount()
	root := &domain.KeywordAnalyticsRoot{ID: "ROOT01", SiteURL: testSite}

	expectCampaignContext(m, campaign, account)

	// Janeiro e fevereiro já persistidos: somente março deve ser buscado
	existing := siteAnalyticsWithMonths(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	)
	m.analyticsRepo.EXPECT().GetSiteAnalytics(testSite).Return(existing, nil)
	m.analyticsRepo.EXPECT().FindOrCreateRoot(testSite).Return(root, nil)
	m.analyticsRepo.EXPECT().
		FindOrCreateKeyword(root.ID, "óculos de grau").
		Return(&domain.KeywordRecord{ID: "KW001", RootID: root.ID, Keyword: "óculos de grau"}, nil).
		AnyTimes()

	existingTraffic := siteTrafficWithMonths(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	)
	m.trafficRepo.EXPECT().GetSiteTraffic(testSite).Return(existingTraffic, nil)
	m.trafficRepo.EXPECT().FindOrCreateRoot(testSite).Return(&domain.TrafficRoot{ID: "TROOT1"}, nil)

	var fetchedWindows [][2]time.Time
	m.integrator.EXPECT().
		GetAnalytics(account, testSite, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *domain.GoogleAccount, _ string, start, end time.Time, dimensions []string, _ bool) ([]gscdomain.Row, error) {
			fetchedWindows = append(fetchedWindows, [2]time.Time{start, end})

			if len(dimensions) == 1 && start.Day() != 28 {
				return []gscdomain.Row{{Keys: []string{"óculos de grau"}, Impressions: 250, Position: 6.0}}, nil
			}
			return nil, nil
		}).
		AnyTimes()

	var savedStats []*domain.MonthlyStat
	m.analyticsRepo.EXPECT().
		SaveMonthlyStat(gomock.Any()).
		DoAndReturn(func(stat *domain.MonthlyStat) error {
			savedStats = append(savedStats, stat)
			return nil
		}).
		Times(1)

	ok := service.FetchAndSaveAnalytics("CMP001", false)
	assert.True(t, ok)

	require.Len(t, savedStats, 1)
	assert.Equal(t, 3, savedStats[0].Month)
	assert.Equal(t, 2024, savedStats[0].Year)

	// Nenhuma janela buscada pode anteceder março: meses persistidos não são
	// rebuscados
	marchStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, window := range fetchedWindows {
		assert.False(t, window[0].Before(marchStart), "janela %v rebusca mês já persistido", window)
	}
}

func TestFetchAndSaveAnalytics_MesCorrenteNuncaEntra(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Tudo até março persistido e estamos em abril: nada a buscar
	now := time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	campaign := testCampaign(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	account := testAccount()

	expectCampaignContext(m, campaign, account)

	existing := siteAnalyticsWithMonths(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	)
	m.analyticsRepo.EXPECT().GetSiteAnalytics(testSite).Return(existing, nil)
	m.analyticsRepo.EXPECT().FindOrCreateRoot(testSite).Return(existing.Root, nil)

	existingTraffic := siteTrafficWithMonths(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	)
	m.trafficRepo.EXPECT().GetSiteTraffic(testSite).Return(existingTraffic, nil)
	m.trafficRepo.EXPECT().FindOrCreateRoot(testSite).Return(existingTraffic.Root, nil)

	// Nenhuma chamada ao Search Console e nenhuma escrita são esperadas

	ok := service.FetchAndSaveAnalytics("CMP001", false)
	assert.True(t, ok)
}

func TestFetchAndSaveAnalytics_VisaoSemDadosNaoDerrubaOMes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	// Um único mês pendente (março)
	campaign := testCampaign(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	account := testAccount()
	root := &domain.KeywordAnalyticsRoot{ID: "ROOT01", SiteURL: testSite}

	expectCampaignContext(m, campaign, account)

	m.analyticsRepo.EXPECT().GetSiteAnalytics(testSite).Return(nil, nil)
	m.analyticsRepo.EXPECT().FindOrCreateRoot(testSite).Return(root, nil)
	m.analyticsRepo.EXPECT().
		FindOrCreateKeyword(root.ID, "óculos de grau").
		Return(&domain.KeywordRecord{ID: "KW001"}, nil)

	m.trafficRepo.EXPECT().GetSiteTraffic(testSite).Return(nil, nil)
	m.trafficRepo.EXPECT().FindOrCreateRoot(testSite).Return(&domain.TrafficRoot{ID: "TROOT1"}, nil)

	m.integrator.EXPECT().
		GetAnalytics(account, testSite, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *domain.GoogleAccount, _ string, start, end time.Time, dimensions []string, _ bool) ([]gscdomain.Row, error) {
			// Somente o agregado por keyword tem dados; páginas e snapshot
			// respondem "sem dados" (nil, nil)
			if len(dimensions) == 1 && start.Day() == 1 && !start.Equal(end) {
				return []gscdomain.Row{{Keys: []string{"óculos de grau"}, Impressions: 150, Position: 9.876}}, nil
			}
			return nil, nil
		}).
		AnyTimes()

	var saved *domain.MonthlyStat
	m.analyticsRepo.EXPECT().
		SaveMonthlyStat(gomock.Any()).
		DoAndReturn(func(stat *domain.MonthlyStat) error {
			saved = stat
			return nil
		}).
		Times(1)

	ok := service.FetchAndSaveAnalytics("CMP001", false)
	assert.True(t, ok)

	require.NotNil(t, saved)
	assert.Equal(t, 150, saved.SearchVolume)
	assert.Equal(t, 9.88, saved.AverageRank)
	assert.Empty(t, saved.TopRankingPageURL)
}

func TestFetchAndSaveAnalytics_ErroDeFetchParaNoUltimoMesPersistido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	campaign := testCampaign(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	account := testAccount()
	root := &domain.KeywordAnalyticsRoot{ID: "ROOT01", SiteURL: testSite}

	expectCampaignContext(m, campaign, account)

	existing := siteAnalyticsWithMonths(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m.analyticsRepo.EXPECT().GetSiteAnalytics(testSite).Return(existing, nil)
	m.analyticsRepo.EXPECT().FindOrCreateRoot(testSite).Return(root, nil)

	// Fevereiro falha com cota esgotada: nenhum mês posterior pode ser
	// buscado, preservando a continuidade do estado persistido
	m.integrator.EXPECT().
		GetAnalytics(account, testSite, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &gscdomain.QuotaError{Retries: 3}).
		Times(1)

	// A fase de tráfego é independente e ainda roda
	m.trafficRepo.EXPECT().GetSiteTraffic(testSite).Return(siteTrafficWithMonths(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	), nil)
	m.trafficRepo.EXPECT().FindOrCreateRoot(testSite).Return(&domain.TrafficRoot{ID: "TROOT1"}, nil)

	ok := service.FetchAndSaveAnalytics("CMP001", false)
	assert.False(t, ok)
}

func TestFetchAndSaveDailyData_WriteOncePorDia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Data alvo = hoje menos o atraso de divulgação (3 dias)
	now := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)
	target := time.Date(2024, 4, 7, 0, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	campaign := testCampaign(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	account := testAccount()
	root := &domain.KeywordAnalyticsRoot{ID: "ROOT01", SiteURL: testSite}

	expectCampaignContext(m, campaign, account)
	m.analyticsRepo.EXPECT().FindOrCreateRoot(testSite).Return(root, nil)

	m.integrator.EXPECT().
		GetAnalytics(account, testSite, target, target, []string{gscdomain.DimensionDate, gscdomain.DimensionQuery}, false).
		Return([]gscdomain.Row{
			{Keys: []string{"2024-04-07", "óculos de grau"}, Impressions: 120, Position: 6.789},
			{Keys: []string{"2024-04-07", "óculos de sol"}, Impressions: 80, Position: 14.2},
			{Keys: []string{"2024-04-07", "keyword de outro site"}, Impressions: 999, Position: 1.0},
		}, nil)

	m.analyticsRepo.EXPECT().
		FindOrCreateKeyword(root.ID, "óculos de grau").
		Return(&domain.KeywordRecord{ID: "KW001"}, nil)
	m.analyticsRepo.EXPECT().
		FindOrCreateKeyword(root.ID, "óculos de sol").
		Return(&domain.KeywordRecord{ID: "KW002"}, nil)

	// A primeira keyword ainda não tem estatística para a data; a segunda já
	// tem e deve ser pulada sem reescrever
	m.analyticsRepo.EXPECT().HasDailyStat("KW001", target).Return(false, nil)
	m.analyticsRepo.EXPECT().HasDailyStat("KW002", target).Return(true, nil)

	var saved *domain.DailyStat
	m.analyticsRepo.EXPECT().
		SaveDailyStat(gomock.Any()).
		DoAndReturn(func(stat *domain.DailyStat) error {
			saved = stat
			return nil
		}).
		Times(1)

	ok := service.FetchAndSaveDailyData("CMP001")
	assert.True(t, ok)

	require.NotNil(t, saved)
	assert.Equal(t, "KW001", saved.KeywordID)
	assert.Equal(t, target, saved.Date)
	assert.Equal(t, 6.79, saved.AverageRank)
	assert.Equal(t, 120, saved.SearchVolume)
}

func TestFetchAndSaveDailyTraffic_AgregadoDoDia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)
	target := time.Date(2024, 4, 7, 0, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	campaign := testCampaign(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	account := testAccount()

	expectCampaignContext(m, campaign, account)
	m.trafficRepo.EXPECT().FindOrCreateRoot(testSite).Return(&domain.TrafficRoot{ID: "TROOT1"}, nil)

	m.integrator.EXPECT().
		GetAnalytics(account, testSite, target, target, nil, false).
		Return([]gscdomain.Row{{Clicks: 33, Impressions: 1200, CTR: 0.0456, Position: 10.111}}, nil)

	var saved *domain.DailyTraffic
	m.trafficRepo.EXPECT().
		SaveDailyTraffic(gomock.Any()).
		DoAndReturn(func(traffic *domain.DailyTraffic) error {
			saved = traffic
			return nil
		}).
		Times(1)

	ok := service.FetchAndSaveDailyTraffic("CMP001")
	assert.True(t, ok)

	require.NotNil(t, saved)
	assert.Equal(t, "TROOT1", saved.RootID)
	assert.Equal(t, target, saved.Date)
	assert.Equal(t, 33, saved.Clicks)
	assert.Equal(t, 1200, saved.Impressions)
	assert.Equal(t, 4.56, saved.CTR)
	assert.Equal(t, 10.11, saved.Position)
}

func TestFetchAndSaveHistoricalDailyData_JanelasMensaisRecortadas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Campanha começou no meio de fevereiro; alvo é 7 de abril
	now := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	campaign := testCampaign(time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC))
	account := testAccount()
	root := &domain.KeywordAnalyticsRoot{ID: "ROOT01", SiteURL: testSite}

	expectCampaignContext(m, campaign, account)
	m.analyticsRepo.EXPECT().FindOrCreateRoot(testSite).Return(root, nil)

	var windows [][2]time.Time
	m.integrator.EXPECT().
		GetAnalytics(account, testSite, gomock.Any(), gomock.Any(), []string{gscdomain.DimensionDate, gscdomain.DimensionQuery}, false).
		DoAndReturn(func(_ *domain.GoogleAccount, _ string, start, end time.Time, _ []string, _ bool) ([]gscdomain.Row, error) {
			windows = append(windows, [2]time.Time{start, end})
			return nil, nil
		}).
		Times(3)

	ok := service.FetchAndSaveHistoricalDailyData("CMP001")
	assert.True(t, ok)

	// A primeira janela começa na data de início da campanha e a última é
	// recortada na data alvo
	require.Len(t, windows, 3)
	assert.Equal(t, time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), windows[0][0])
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), windows[0][1])
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), windows[1][0])
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), windows[1][1])
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), windows[2][0])
	assert.Equal(t, time.Date(2024, 4, 7, 0, 0, 0, 0, time.UTC), windows[2][1])
}

func TestFetchAllCampaignsData_FalhasIsoladasPorCampanha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	campaigns := []*domain.Campaign{
		testCampaign(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		{ID: "CMP002", SearchConsoleSite: testSite, GoogleAccountID: "GA001", Status: domain.CampaignStatusActive},
		testCampaign(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	campaigns[0].ID = "CMP001"
	campaigns[2].ID = "CMP003"

	m.campaignRepo.EXPECT().
		ListCampaigns([]domain.CampaignStatus{domain.CampaignStatusActive}).
		Return(campaigns, nil)

	account := testAccount()
	existing := siteAnalyticsWithMonths(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	)
	existingTraffic := siteTrafficWithMonths(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	)

	for _, id := range []string{"CMP001", "CMP003"} {
		campaign := testCampaign(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		campaign.ID = id
		m.campaignRepo.EXPECT().GetCampaignByID(id).Return(campaign, nil)
	}
	m.accountRepo.EXPECT().GetByID("GA001").Return(account, nil).Times(2)
	m.analyticsRepo.EXPECT().GetSiteAnalytics(testSite).Return(existing, nil).Times(2)
	m.analyticsRepo.EXPECT().FindOrCreateRoot(testSite).Return(existing.Root, nil).Times(2)
	m.trafficRepo.EXPECT().GetSiteTraffic(testSite).Return(existingTraffic, nil).Times(2)
	m.trafficRepo.EXPECT().FindOrCreateRoot(testSite).Return(existingTraffic.Root, nil).Times(2)

	// A campanha do meio não existe mais: falha isolada, sem derrubar o lote
	m.campaignRepo.EXPECT().GetCampaignByID("CMP002").Return(nil, nil)

	result := service.FetchAllCampaignsData(false)

	require.NotNil(t, result)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []string{"CMP002"}, result.FailedCampaignIDs)
}

func TestFetchAndSaveDailyData_ContaInativa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)
	service, m := newTestService(ctrl, now)

	campaign := testCampaign(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	account := testAccount()
	account.IsActive = false

	m.campaignRepo.EXPECT().GetCampaignByID("CMP001").Return(campaign, nil)
	m.accountRepo.EXPECT().GetByID("GA001").Return(account, nil)

	ok := service.FetchAndSaveDailyData("CMP001")
	assert.False(t, ok)
}

func TestFetchAndSaveAnalytics_CampanhaInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC))

	m.campaignRepo.EXPECT().GetCampaignByID("CMP999").Return(nil, nil)

	ok := service.FetchAndSaveAnalytics("CMP999", false)
	assert.False(t, ok)
}

func TestFetchAndSaveAnalytics_ErroDeBancoNaCampanha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC))

	m.campaignRepo.EXPECT().GetCampaignByID("CMP001").Return(nil, errors.New("conexão recusada"))

	ok := service.FetchAndSaveAnalytics("CMP001", false)
	assert.False(t, ok)
}
