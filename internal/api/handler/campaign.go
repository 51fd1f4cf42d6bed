package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/seo-campaign-api/internal/usecases/reporting"
	"github.com/vfg2006/seo-campaign-api/pkg/apiErrors"
	"github.com/vfg2006/seo-campaign-api/pkg/log"
)

// ListCampaigns retorna todas as campanhas cadastradas
func ListCampaigns(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaigns, err := service.ListCampaigns()
		if err != nil {
			logger.WithField("error", err.Error()).Error("campaigns: failed to list campaigns")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar campanhas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			logger.WithField("error", err.Error()).Error("campaigns: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetCampaignAnalytics retorna a projeção de keywords persistida da campanha.
// Os dados vêm exclusivamente da persistência; nenhuma chamada sai para o
// Search Console
func GetCampaignAnalytics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("campaign_id", id).Info("campaigns: fetching analytics projection")

		analytics, err := service.GetCampaignAnalytics(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Error("campaigns: failed to get analytics projection")
			apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)
			return
		}

		if analytics == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoAnalyticsData, "Nenhum dado de analytics para a campanha", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analytics); err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Error("campaigns: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetCampaignTraffic retorna a projeção de tráfego persistida da campanha
func GetCampaignTraffic(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("campaign_id", id).Info("campaigns: fetching traffic projection")

		traffic, err := service.GetCampaignTraffic(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Error("campaigns: failed to get traffic projection")
			apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)
			return
		}

		if traffic == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoAnalyticsData, "Nenhum dado de tráfego para a campanha", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(traffic); err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Error("campaigns: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
