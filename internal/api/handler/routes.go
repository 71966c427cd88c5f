package handler

import (
	"net/http"

	"github.com/vfg2006/transaction-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/transaction-dashboard-api/internal/scheduler"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/reporting"
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

func Initialization(syncer scheduler.FeedSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/initialize",
			Method:  http.MethodPost,
			Handler: Initialize(syncer),
		},
		{
			Path:    "/api/initialize/async",
			Method:  http.MethodPost,
			Handler: TriggerInitialize(syncer),
		},
		{
			Path:    "/api/initialize/status",
			Method:  http.MethodGet,
			Handler: GetInitializeStatus(syncer),
		},
	}
}

func Transactions(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/transactions",
			Method:  http.MethodGet,
			Handler: ListTransactions(service),
		},
		{
			Path:    "/api/statistics",
			Method:  http.MethodGet,
			Handler: GetStatistics(service),
		},
		{
			Path:    "/api/bar-chart",
			Method:  http.MethodGet,
			Handler: GetBarChart(service),
		},
		{
			Path:    "/api/pie-chart",
			Method:  http.MethodGet,
			Handler: GetPieChart(service),
		},
		{
			Path:    "/api/combined-data",
			Method:  http.MethodGet,
			Handler: GetCombinedData(service),
		},
	}
}
