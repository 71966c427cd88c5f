package handler

import (
	"net/http"

	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/transaction-dashboard-api/pkg/log"
)

// ListTransactions lista as transações do mês com busca e paginação
func ListTransactions(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := transactionFilters(r)
		if err != nil {
			writeServiceError(w, r, "transactions", err)
			return
		}

		page, err := service.ListTransactions(r.Context(), filters)
		if err != nil {
			writeServiceError(w, r, "transactions", err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"month": filters.Month.String(),
			"total": page.Total,
		}).Debug("transactions: listagem concluída")

		writeJSON(w, r, "transactions", http.StatusOK, page)
	}
}

// GetStatistics retorna o total vendido e a contagem de itens vendidos e não vendidos
func GetStatistics(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statistics, err := service.GetStatistics(r.Context(), monthParam(r))
		if err != nil {
			writeServiceError(w, r, "statistics", err)
			return
		}

		writeJSON(w, r, "statistics", http.StatusOK, statistics)
	}
}

// GetBarChart retorna as dez faixas de preço do mês
func GetBarChart(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chart, err := service.GetBarChart(r.Context(), monthParam(r))
		if err != nil {
			writeServiceError(w, r, "bar-chart", err)
			return
		}

		writeJSON(w, r, "bar-chart", http.StatusOK, chart)
	}
}

// GetPieChart retorna a contagem por categoria do mês
func GetPieChart(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chart, err := service.GetPieChart(r.Context(), monthParam(r))
		if err != nil {
			writeServiceError(w, r, "pie-chart", err)
			return
		}

		writeJSON(w, r, "pie-chart", http.StatusOK, chart)
	}
}

func GetCombinedData(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		combined, err := service.GetCombinedData(r.Context(), monthParam(r))
		if err != nil {
			writeServiceError(w, r, "combined-data", err)
			return
		}

		writeJSON(w, r, "combined-data", http.StatusOK, combined)
	}
}
