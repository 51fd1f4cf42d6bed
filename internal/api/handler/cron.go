package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-campaign-api/internal/domain"
	"github.com/vfg2006/seo-campaign-api/internal/scheduler"
	"github.com/vfg2006/seo-campaign-api/pkg/apiErrors"
	"github.com/vfg2006/seo-campaign-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMonthly        = "monthly"
	CronJobTypeDailyPositions = "daily-positions"
	CronJobTypeDailyTraffic   = "daily-traffic"
	CronJobTypeHistorical     = "historical"
	CronJobTypeAll            = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MonthlyAnalyticsSyncService *scheduler.MonthlyAnalyticsSyncService
	DailyPositionSyncService    *scheduler.DailyPositionSyncService
	DailyTrafficSyncService     *scheduler.DailyTrafficSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeMonthly:
			// Executar carga mensal de analytics
			if services.MonthlyAnalyticsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de carga mensal não disponível", nil)
				return
			}
			services.MonthlyAnalyticsSyncService.TriggerManualSync()

		case CronJobTypeDailyPositions:
			// Executar sincronização de posições diárias
			if services.DailyPositionSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de posições diárias não disponível", nil)
				return
			}
			services.DailyPositionSyncService.TriggerManualSync()

		case CronJobTypeDailyTraffic:
			// Executar sincronização de tráfego diário
			if services.DailyTrafficSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de tráfego diário não disponível", nil)
				return
			}
			services.DailyTrafficSyncService.TriggerManualSync()

		case CronJobTypeHistorical:
			// Executar backfill histórico de posições diárias
			if services.DailyPositionSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de posições diárias não disponível", nil)
				return
			}
			services.DailyPositionSyncService.TriggerHistoricalBackfill()

		case CronJobTypeAll:
			// Executar todas as sincronizações
			if services.MonthlyAnalyticsSyncService != nil {
				services.MonthlyAnalyticsSyncService.TriggerManualSync()
			}
			if services.DailyPositionSyncService != nil {
				services.DailyPositionSyncService.TriggerManualSync()
			}
			if services.DailyTrafficSyncService != nil {
				services.DailyTrafficSyncService.TriggerManualSync()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: monthly, daily-positions, daily-traffic, historical, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"monthly":         services.MonthlyAnalyticsSyncService.GetStatus(),
			"daily-positions": services.DailyPositionSyncService.GetStatus(),
			"daily-traffic":   services.DailyTrafficSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
