// Package memory implementa o repositório de transações em memória,
// usado em desenvolvimento (DATABASE_DRIVER=memory) e nos testes
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
)

type TransactionStore struct {
	mu    sync.RWMutex
	items []domain.Transaction
}

func NewTransactionStore() *TransactionStore {
	return &TransactionStore{}
}

func (s *TransactionStore) List(_ context.Context, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	matched := s.match(filters)

	offset := min(filters.Offset(), len(matched))
	end := min(offset+filters.PerPage, len(matched))

	transactions := make([]*domain.Transaction, 0, end-offset)
	for i := offset; i < end; i++ {
		transaction := matched[i]
		transactions = append(transactions, &transaction)
	}

	return transactions, nil
}

func (s *TransactionStore) Count(_ context.Context, filters *domain.TransactionFilters) (int64, error) {
	return int64(len(s.match(filters))), nil
}

func (s *TransactionStore) GetStatistics(_ context.Context, month domain.Month) (*domain.Statistics, error) {
	statistics := &domain.Statistics{TotalSale: decimal.Zero}
	for _, transaction := range s.byMonth(month) {
		statistics.TotalSale = statistics.TotalSale.Add(transaction.Price)
		if transaction.Sold {
			statistics.SoldItems++
		} else {
			statistics.NotSoldItems++
		}
	}
	return statistics, nil
}

func (s *TransactionStore) CountByPriceRange(_ context.Context, month domain.Month) (map[int]int64, error) {
	counts := make(map[int]int64, len(domain.PriceRanges))
	for _, transaction := range s.byMonth(month) {
		counts[domain.BucketIndex(transaction.Price)]++
	}
	return counts, nil
}

func (s *TransactionStore) CountByCategory(_ context.Context, month domain.Month) ([]domain.CategoryCount, error) {
	counts := map[string]int64{}
	for _, transaction := range s.byMonth(month) {
		counts[transaction.Category]++
	}

	categories := make([]domain.CategoryCount, 0, len(counts))
	for category, count := range counts {
		categories = append(categories, domain.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})

	return categories, nil
}

func (s *TransactionStore) ReplaceAll(_ context.Context, transactions []*domain.Transaction) error {
	items := make([]domain.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		item := *transaction
		item.DateOfSale = item.DateOfSale.UTC()
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].ProductID != items[j].ProductID {
			return items[i].ProductID < items[j].ProductID
		}
		return items[i].ID < items[j].ID
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items

	return nil
}

func (s *TransactionStore) CountAll(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.items)), nil
}

func (s *TransactionStore) byMonth(month domain.Month) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, 0)
	for _, transaction := range s.items {
		if int(transaction.DateOfSale.Month()) == int(month) {
			out = append(out, transaction)
		}
	}
	return out
}

func (s *TransactionStore) match(filters *domain.TransactionFilters) []domain.Transaction {
	transactions := s.byMonth(filters.Month)

	search := strings.ToLower(strings.TrimSpace(filters.Search))
	if search == "" {
		return transactions
	}

	price, numeric := filters.SearchPrice()

	out := make([]domain.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		switch {
		case strings.Contains(strings.ToLower(transaction.Title), search),
			strings.Contains(strings.ToLower(transaction.Description), search),
			numeric && transaction.Price.Equal(price):
			out = append(out, transaction)
		}
	}
	return out
}
