// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-campaign-api/internal/config"
	"github.com/vfg2006/seo-campaign-api/internal/usecases/analyzing"
)

// MonthlyAnalyticsSyncConfig representa a configuração do agendador da carga mensal
type MonthlyAnalyticsSyncConfig struct {
	CronSchedule   string
	WaitForAllData bool
	SyncEnabled    bool
}

// MonthlyAnalyticsSyncService gerencia o agendamento da carga mensal de
// analytics de todas as campanhas ativas. Roda no primeiro dia do mês, depois
// que o mês anterior fechou por completo
type MonthlyAnalyticsSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyAnalyticsSyncConfig
	analyzer            analyzing.Analyzer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *analyzing.BatchResult
}

// NewMonthlyAnalyticsSyncService cria uma nova instância do serviço de carga mensal
func NewMonthlyAnalyticsSyncService(
	analyzer analyzing.Analyzer,
	appConfig *config.Config,
) *MonthlyAnalyticsSyncService {
	syncConfig := MonthlyAnalyticsSyncConfig{
		CronSchedule:   appConfig.MonthlyAnalyticsSync.CronSchedule,
		WaitForAllData: appConfig.MonthlyAnalyticsSync.WaitForAllData,
		SyncEnabled:    appConfig.MonthlyAnalyticsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":     syncConfig.CronSchedule,
		"wait_for_all_data": syncConfig.WaitForAllData,
		"sync_enabled":      syncConfig.SyncEnabled,
	}).Info("Configuração do agendador da carga mensal de analytics carregada")

	return &MonthlyAnalyticsSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		analyzer:  analyzer,
	}
}

// Start inicia o agendador
func (s *MonthlyAnalyticsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Carga mensal de analytics desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da carga mensal de analytics")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllCampaigns()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar carga mensal de analytics: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da carga mensal de analytics")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllCampaigns dispara a carga mensal para todas as campanhas ativas. O
// fan-out e o isolamento de falhas por campanha ficam a cargo do Analyzer; o
// agendador só consome os contadores do lote
func (s *MonthlyAnalyticsSyncService) syncAllCampaigns() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Carga mensal de analytics já em andamento, ignorando")
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

	logrus.Info("Iniciando carga mensal de analytics para todas as campanhas ativas")

	result := s.analyzer.FetchAllCampaignsData(s.config.WaitForAllData)
	s.lastResult = result

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"total":     result.Total,
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
	}).Info("Carga mensal de analytics concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma carga mensal de analytics
func (s *MonthlyAnalyticsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Carga mensal de analytics já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando carga mensal manual de analytics")
	go s.syncAllCampaigns()
}

// GetStatus retorna o status atual do agendador
func (s *MonthlyAnalyticsSyncService) GetStatus() map[string]any {
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"wait_for_all_data":      s.config.WaitForAllData,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastResult != nil {
		status["last_sync_total"] = s.lastResult.Total
		status["last_sync_succeeded"] = s.lastResult.Succeeded
		status["last_sync_failed"] = s.lastResult.Failed
	}

	return status
}
