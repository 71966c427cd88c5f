package memory_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/repository/memory"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
)

var _ repository.TransactionRepository = (*memory.TransactionStore)(nil)

func newTransaction(id string, productID int64, title, price, category string, sold bool, date time.Time) *domain.Transaction {
	return &domain.Transaction{
		ID:          id,
		ProductID:   productID,
		Title:       title,
		Description: title + " description",
		Price:       decimal.RequireFromString(price),
		Category:    category,
		Sold:        sold,
		DateOfSale:  date,
	}
}

func seededStore(t *testing.T) *memory.TransactionStore {
	t.Helper()

	march := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	store := memory.NewTransactionStore()
	err := store.ReplaceAll(context.Background(), []*domain.Transaction{
		newTransaction("c", 3, "Backpack", "100", "bags", false, march),
		newTransaction("a", 1, "Jacket", "150", "clothing", true, march),
		newTransaction("b", 2, "Ring", "901", "jewelery", true, march),
		newTransaction("d", 4, "Monitor", "950", "electronics", false, april),
		// 23h em UTC-3 ainda é março, mas em UTC já é abril
		newTransaction("e", 5, "Cable", "101", "electronics", true, time.Date(2024, 3, 31, 23, 0, 0, 0, time.FixedZone("BRT", -3*3600))),
	})
	require.NoError(t, err)

	return store
}

func TestTransactionStore_List(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)

	t.Run("Ordena por productId e pagina", func(t *testing.T) {
		filters := &domain.TransactionFilters{Month: 3, Page: 1, PerPage: 2}

		transactions, err := store.List(ctx, filters)
		require.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, "a", transactions[0].ID)
		assert.Equal(t, "b", transactions[1].ID)

		filters.Page = 2
		transactions, err = store.List(ctx, filters)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, "c", transactions[0].ID)

		filters.Page = 5
		transactions, err = store.List(ctx, filters)
		require.NoError(t, err)
		assert.Empty(t, transactions)
	})

	t.Run("Página gigante retorna vazio sem estourar o deslocamento", func(t *testing.T) {
		filters := &domain.TransactionFilters{Month: 3, Page: math.MaxInt/2 + 2, PerPage: 2}

		transactions, err := store.List(ctx, filters)
		require.NoError(t, err)
		assert.Empty(t, transactions)
	})

	t.Run("Busca textual sem diferenciar maiúsculas", func(t *testing.T) {
		filters := &domain.TransactionFilters{Month: 3, Search: "JACK", Page: 1, PerPage: 10}

		transactions, err := store.List(ctx, filters)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, "a", transactions[0].ID)
	})

	t.Run("Busca numérica compara o preço exato", func(t *testing.T) {
		filters := &domain.TransactionFilters{Month: 3, Search: "901", Page: 1, PerPage: 10}

		transactions, err := store.List(ctx, filters)
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, "b", transactions[0].ID)
	})

	t.Run("Mês desconhecido não retorna nada", func(t *testing.T) {
		total, err := store.Count(ctx, &domain.TransactionFilters{Month: domain.UnknownMonth, PerPage: 10})
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestTransactionStore_Aggregations(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)

	statistics, err := store.GetStatistics(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "1151", statistics.TotalSale.String())
	assert.Equal(t, int64(2), statistics.SoldItems)
	assert.Equal(t, int64(1), statistics.NotSoldItems)

	buckets, err := store.CountByPriceRange(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{0: 1, 1: 1, 9: 1}, buckets)

	categories, err := store.CountByCategory(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []domain.CategoryCount{
		{Category: "bags", Count: 1},
		{Category: "clothing", Count: 1},
		{Category: "jewelery", Count: 1},
	}, categories)

	april, err := store.CountByCategory(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, []domain.CategoryCount{{Category: "electronics", Count: 2}}, april)

	empty, err := store.GetStatistics(ctx, 1)
	require.NoError(t, err)
	assert.True(t, empty.TotalSale.IsZero())
}

func TestTransactionStore_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)

	total, err := store.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)

	require.NoError(t, store.ReplaceAll(ctx, nil))

	total, err = store.CountAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}
