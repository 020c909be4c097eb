package handler

import (
	"net/http"

	"github.com/vfg2006/earnings-report-api/infrastructure/repository"
	"github.com/vfg2006/earnings-report-api/internal/api/handler/router"
	"github.com/vfg2006/earnings-report-api/internal/domain"
	"github.com/vfg2006/earnings-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/earnings-report-api/internal/usecases/excluding"
	"github.com/vfg2006/earnings-report-api/pkg/middleware"
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
	}
}

// Data expõe o armazenamento chave-valor genérico do painel. A leitura é
// aberta; escrita e remoção exigem administrador.
func Data(store repository.ConfigStore) []router.Route {
	return []router.Route{
		{
			Path:    "/api/data/:key",
			Method:  http.MethodGet,
			Handler: GetData(store),
		},
		{
			Path:        "/api/data/:key",
			Method:      http.MethodPost,
			Handler:     SetData(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/api/data/:key",
			Method:      http.MethodDelete,
			Handler:     DeleteData(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Reports(store repository.ConfigStore, exclusions excluding.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/mtd",
			Method:  http.MethodGet,
			Handler: GetStoredReport(store, exclusions, domain.KeyMTDData),
		},
		{
			Path:    "/v1/reports/last7days",
			Method:  http.MethodGet,
			Handler: GetStoredReport(store, exclusions, domain.KeyLast7DaysData),
		},
	}
}

func Exclusions(service excluding.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/exclusions/:period",
			Method:  http.MethodGet,
			Handler: GetExclusions(service),
		},
		{
			Path:        "/v1/exclusions/:period/toggle",
			Method:      http.MethodPost,
			Handler:     ToggleExclusion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/earnings/run",
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
