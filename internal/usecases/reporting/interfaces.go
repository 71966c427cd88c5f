package reporting

import (
	"context"

	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
)

// Reporter define as consultas sobre as transações de um mês
type Reporter interface {
	// ListTransactions lista as transações do mês com busca e paginação
	ListTransactions(ctx context.Context, filters *domain.TransactionFilters) (*domain.TransactionPage, error)

	// GetStatistics soma as vendas e conta os itens vendidos e não vendidos
	GetStatistics(ctx context.Context, month domain.Month) (*domain.Statistics, error)

	// GetBarChart conta as transações em cada uma das dez faixas de preço
	GetBarChart(ctx context.Context, month domain.Month) ([]domain.PriceRangeCount, error)

	// GetPieChart conta as transações por categoria
	GetPieChart(ctx context.Context, month domain.Month) ([]domain.CategoryCount, error)

	// GetCombinedData executa as três agregações em paralelo
	GetCombinedData(ctx context.Context, month domain.Month) (*domain.CombinedData, error)
}
