package handler

import (
	"net/http"

	"github.com/vfg2006/seo-campaign-api/internal/api/handler/router"
	"github.com/vfg2006/seo-campaign-api/internal/usecases/authenticating"
	"github.com/vfg2006/seo-campaign-api/internal/usecases/reporting"
	"github.com/vfg2006/seo-campaign-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Campaigns(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/campaigns/:id/analytics",
			Method:      http.MethodGet,
			Handler:     GetCampaignAnalytics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id/traffic",
			Method:      http.MethodGet,
			Handler:     GetCampaignTraffic(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
