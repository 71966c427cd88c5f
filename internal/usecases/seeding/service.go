package seeding

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/feed"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"github.com/vfg2006/transaction-dashboard-api/pkg/log"
	"github.com/vfg2006/transaction-dashboard-api/pkg/utils"
)

const SuccessMessage = "Database initialized successfully"

type Seeder interface {
	// Initialize substitui todas as transações pelo conteúdo atual do feed
	Initialize(ctx context.Context) (*domain.SeedResult, error)
}

type Service struct {
	feedService           feed.FeedIntegrator
	transactionRepository repository.TransactionRepository
	generateID            func() (string, error)
	mu                    sync.Mutex
}

func NewService(feedService feed.FeedIntegrator, transactionRepository repository.TransactionRepository) *Service {
	return &Service{
		feedService:           feedService,
		transactionRepository: transactionRepository,
		generateID:            utils.GenerateID,
	}
}

// Initialize é serializado: duas cargas simultâneas nunca intercalam limpeza e inserção
func (s *Service) Initialize(ctx context.Context) (*domain.SeedResult, error) {
	const op = "seeding.Initialize"

	s.mu.Lock()
	defer s.mu.Unlock()

	logger := log.ForContext(ctx)

	feedTransactions, err := s.feedService.FetchTransactions(ctx)
	if err != nil {
		return nil, domain.NewError(domain.ErrKindUpstreamFetch, op, errors.Wrap(err, "falha ao obter o feed"))
	}

	transactions := make([]*domain.Transaction, 0, len(feedTransactions))
	for _, feedTransaction := range feedTransactions {
		id, err := s.generateID()
		if err != nil {
			return nil, domain.NewError(domain.ErrKindInternal, op, errors.Wrap(err, "falha ao gerar id"))
		}
		transactions = append(transactions, feedTransaction.ToDomain(id))
	}

	if err := s.transactionRepository.ReplaceAll(ctx, transactions); err != nil {
		return nil, domain.NewError(domain.ErrKindStoreUnavailable, op, errors.Wrap(err, "falha ao gravar transações"))
	}

	logger.WithField("inserted", len(transactions)).Info("seeding: base de transações reinicializada")

	return &domain.SeedResult{
		Message:  SuccessMessage,
		Inserted: len(transactions),
	}, nil
}
