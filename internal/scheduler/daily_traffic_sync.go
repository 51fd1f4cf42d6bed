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

// DailyTrafficSyncConfig representa a configuração do agendador de tráfego diário
type DailyTrafficSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// DailyTrafficSyncService grava o agregado diário de tráfego de cada site.
// Agendado depois da sincronização de posições para sequenciar as dependências
type DailyTrafficSyncService struct {
	scheduler           *gocron.Scheduler
	config              DailyTrafficSyncConfig
	campaignRepo        repository.CampaignRepository
	analyzer            analyzing.Analyzer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDailyTrafficSyncService cria uma nova instância do serviço de tráfego diário
func NewDailyTrafficSyncService(
	campaignRepo repository.CampaignRepository,
	analyzer analyzing.Analyzer,
	appConfig *config.Config,
) *DailyTrafficSyncService {
	syncConfig := DailyTrafficSyncConfig{
		CronSchedule:        appConfig.DailyTrafficSync.CronSchedule,
		RequestDelaySeconds: appConfig.DailyTrafficSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.DailyTrafficSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.DailyTrafficSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de tráfego diário carregada")

	return &DailyTrafficSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		campaignRepo: campaignRepo,
		analyzer:     analyzer,
	}
}

// Start inicia o agendador
func (s *DailyTrafficSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de tráfego diário desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de tráfego diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllCampaigns()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de tráfego diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de tráfego diário")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllCampaigns grava o tráfego diário de cada campanha ativa
func (s *DailyTrafficSyncService) syncAllCampaigns() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de tráfego diário já em andamento, ignorando")
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

	logrus.Info("Iniciando sincronização de tráfego diário para todas as campanhas ativas")

	campaigns, err := s.campaignRepo.ListCampaigns([]domain.CampaignStatus{domain.CampaignStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de campanhas para sincronização de tráfego diário")
		return
	}

	if len(campaigns) == 0 {
		logrus.Info("Nenhuma campanha ativa encontrada para sincronização de tráfego diário")
		return
	}

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex

	succeeded, failed := 0, 0

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
			}).Info("Processando tráfego diário para campanha")

			ok := s.analyzer.FetchAndSaveDailyTraffic(campaign.ID)

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

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"campaigns": len(campaigns),
		"succeeded": succeeded,
		"failed":    failed,
	}).Info("Sincronização de tráfego diário concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização de tráfego diário
func (s *DailyTrafficSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de tráfego diário já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de tráfego diário")
	go s.syncAllCampaigns()
}

// GetStatus retorna o status atual do agendador
func (s *DailyTrafficSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
