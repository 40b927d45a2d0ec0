package handler

import (
	"net/http"

	"github.com/vfg2006/ads-sync-api/internal/api/handler/router"
	"github.com/vfg2006/ads-sync-api/internal/usecases/credentialing"
	"github.com/vfg2006/ads-sync-api/internal/usecases/discovering"
	"github.com/vfg2006/ads-sync-api/internal/usecases/ingesting"
	"github.com/vfg2006/ads-sync-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Ingestions(orchestrator ingesting.Orchestrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ingestions",
			Method:      http.MethodPost,
			Handler:     RunIngestion(orchestrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ingestions/:id",
			Method:      http.MethodGet,
			Handler:     GetIngestionRun(orchestrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/ingestions",
			Method:      http.MethodGet,
			Handler:     ListUserIngestions(orchestrator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func AdAccounts(service discovering.Discoverer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/discovery",
			Method:      http.MethodPost,
			Handler:     DiscoverAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     AdAccountList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrService()},
		},
	}
}

func Credentials(tokenManager credentialing.TokenManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users/:id/credentials",
			Method:      http.MethodPost,
			Handler:     RegisterCredential(tokenManager),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrService()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
