package reporting

import (
	"context"

	"github.com/vfg2006/transaction-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/transaction-dashboard-api/internal/config"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"github.com/vfg2006/transaction-dashboard-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	pagination            config.Pagination
	transactionRepository repository.TransactionRepository
}

func NewService(pagination config.Pagination, transactionRepository repository.TransactionRepository) Reporter {
	return &Service{
		pagination:            pagination,
		transactionRepository: transactionRepository,
	}
}

func (s *Service) ListTransactions(ctx context.Context, filters *domain.TransactionFilters) (*domain.TransactionPage, error) {
	const op = "reporting.ListTransactions"

	normalized := s.normalize(filters)

	transactions, err := s.transactionRepository.List(ctx, normalized)
	if err != nil {
		return nil, domain.NewError(domain.ErrKindStoreUnavailable, op, err)
	}
	if transactions == nil {
		transactions = []*domain.Transaction{}
	}

	total, err := s.transactionRepository.Count(ctx, normalized)
	if err != nil {
		return nil, domain.NewError(domain.ErrKindStoreUnavailable, op, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"month":    normalized.Month.String(),
		"search":   normalized.Search,
		"page":     normalized.Page,
		"per_page": normalized.PerPage,
		"total":    total,
	}).Debug("reporting: transações listadas")

	return &domain.TransactionPage{
		Transactions: transactions,
		Total:        total,
		Page:         normalized.Page,
		PerPage:      normalized.PerPage,
		TotalPages:   domain.TotalPages(total, normalized.PerPage),
	}, nil
}

func (s *Service) GetStatistics(ctx context.Context, month domain.Month) (*domain.Statistics, error) {
	statistics, err := s.transactionRepository.GetStatistics(ctx, month)
	if err != nil {
		return nil, domain.NewError(domain.ErrKindStoreUnavailable, "reporting.GetStatistics", err)
	}
	return statistics, nil
}

func (s *Service) GetBarChart(ctx context.Context, month domain.Month) ([]domain.PriceRangeCount, error) {
	counts, err := s.transactionRepository.CountByPriceRange(ctx, month)
	if err != nil {
		return nil, domain.NewError(domain.ErrKindStoreUnavailable, "reporting.GetBarChart", err)
	}
	return domain.NewBarChart(counts), nil
}

func (s *Service) GetPieChart(ctx context.Context, month domain.Month) ([]domain.CategoryCount, error) {
	categories, err := s.transactionRepository.CountByCategory(ctx, month)
	if err != nil {
		return nil, domain.NewError(domain.ErrKindStoreUnavailable, "reporting.GetPieChart", err)
	}
	if categories == nil {
		categories = []domain.CategoryCount{}
	}
	return categories, nil
}

// GetCombinedData falha por inteiro se qualquer uma das agregações falhar
func (s *Service) GetCombinedData(ctx context.Context, month domain.Month) (*domain.CombinedData, error) {
	combined := &domain.CombinedData{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		statistics, err := s.GetStatistics(gctx, month)
		if err != nil {
			return err
		}
		combined.Statistics = statistics
		return nil
	})

	g.Go(func() error {
		barChart, err := s.GetBarChart(gctx, month)
		if err != nil {
			return err
		}
		combined.BarChart = barChart
		return nil
	})

	g.Go(func() error {
		pieChart, err := s.GetPieChart(gctx, month)
		if err != nil {
			return err
		}
		combined.PieChart = pieChart
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return combined, nil
}

// normalize aplica os valores padrão de paginação e o limite de itens por página
func (s *Service) normalize(filters *domain.TransactionFilters) *domain.TransactionFilters {
	normalized := *filters

	if normalized.Page < 1 {
		normalized.Page = 1
	}
	if normalized.PerPage < 1 {
		normalized.PerPage = s.pagination.DefaultPerPage
	}
	if s.pagination.MaxPerPage > 0 && normalized.PerPage > s.pagination.MaxPerPage {
		normalized.PerPage = s.pagination.MaxPerPage
	}

	return &normalized
}
