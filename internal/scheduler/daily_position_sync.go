package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-campaign-api/infrastructure/repository"
	"github.com/vfg2006/seo-campaign-api/internal/config"
	"github.com/vfg2006/seo-campaign-api/internal/domain"
	"github.com/vfg2006/seo-campaign-api/internal/usecases/analyzing"
)

// DailyPositionSyncConfig representa a configuração do agendador de posições diárias
type DailyPositionSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// DailyPositionSyncService gerencia a gravação diária das posições das
// keywords de todas as campanhas ativas, para a data alvo (hoje menos o
// atraso de divulgação do Search Console)
type DailyPositionSyncService struct {
	scheduler           *gocron.Scheduler
	config              DailyPositionSyncConfig
	campaignRepo        repository.CampaignRepository
	analyzer            analyzing.Analyzer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDailyPositionSyncService cria uma nova instância do serviço de posições diárias
func NewDailyPositionSyncService(
	campaignRepo repository.CampaignRepository,
	analyzer analyzing.Analyzer,
	appConfig *config.Config,
) *DailyPositionSyncService {
	syncConfig := DailyPositionSyncConfig{
		CronSchedule:        appConfig.DailyPositionSync.CronSchedule,
		RequestDelaySeconds: appConfig.DailyPositionSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.DailyPositionSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.DailyPositionSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de posições diárias carregada")

	return &DailyPositionSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		campaignRepo: campaignRepo,
		analyzer:     analyzer,
	}
}

// Start inicia o agendador
func (s *DailyPositionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de posições diárias desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de posições diárias")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllCampaigns()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de posições diárias: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de posições diárias")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllCampaigns grava as posições diárias de cada campanha ativa, com
// fan-out limitado e pausa entre campanhas para não sobrecarregar a API
func (s *DailyPositionSyncService) syncAllCampaigns() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de posições diárias já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de posições diárias para todas as campanhas ativas")

	campaigns, err := s.getActiveCampaigns()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de campanhas para sincronização de posições diárias")
		return
	}

	if len(campaigns) == 0 {
		logrus.Info("Nenhuma campanha ativa encontrada para sincronização de posições diárias")
		return
	}

	succeeded, failed := s.processCampaigns(campaigns, s.analyzer.FetchAndSaveDailyData)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"campaigns": len(campaigns),
		"succeeded": succeeded,
		"failed":    failed,
	}).Info("Sincronização de posições diárias concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getActiveCampaigns busca as campanhas ativas
func (s *DailyPositionSyncService) getActiveCampaigns() ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepo.ListCampaigns([]domain.CampaignStatus{domain.CampaignStatusActive})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"active_campaigns": len(campaigns),
	}).Info("Campanhas encontradas para sincronização de posições diárias")

	return campaigns, nil
}

// processCampaigns executa a operação por campanha com semáforo de
// concorrência e pausa entre requisições. Falhas são isoladas por campanha
func (s *DailyPositionSyncService) processCampaigns(campaigns []*domain.Campaign, operation func(string) bool) (succeeded, failed int) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, campaign := range campaigns {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(campaign *domain.Campaign) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.ID,
				"site":        campaign.SearchConsoleSite,
			}).Info("Processando posições diárias para campanha")

			ok := operation(campaign.ID)

			mu.Lock()
			if ok {
				succeeded++
			} else {
				failed++
			}
			mu.Unlock()

			// Aguardar antes da próxima requisição para evitar sobrecarga na API
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(campaign)
	}

	wg.Wait()

	return succeeded, failed
}

// TriggerManualSync inicia manualmente uma sincronização de posições diárias
func (s *DailyPositionSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de posições diárias já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de posições diárias")
	go s.syncAllCampaigns()
}

// TriggerHistoricalBackfill dispara o preenchimento histórico de posições
// diárias de todas as campanhas ativas, usado quando campanhas são criadas
// com data de início no passado
func (s *DailyPositionSyncService) TriggerHistoricalBackfill() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de posições diárias já em andamento, ignorando backfill manual")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	logrus.Info("Iniciando backfill histórico de posições diárias")

	go func() {
		defer func() {
			s.syncMutex.Lock()
			s.syncRunning = false
			s.syncMutex.Unlock()
		}()

		campaigns, err := s.getActiveCampaigns()
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar lista de campanhas para backfill histórico")
			return
		}

		succeeded, failed := s.processCampaigns(campaigns, s.analyzer.FetchAndSaveHistoricalDailyData)

		logrus.WithFields(logrus.Fields{
			"campaigns": len(campaigns),
			"succeeded": succeeded,
			"failed":    failed,
		}).Info("Backfill histórico de posições diárias concluído")
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DailyPositionSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
