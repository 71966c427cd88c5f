package feed

import (
	"context"

	feeddomain "github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/feed/domain"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/feed/feedclient"
	"github.com/vfg2006/transaction-dashboard-api/internal/config"
	"github.com/vfg2006/transaction-dashboard-api/pkg/log"
)

type FeedIntegrator interface {
	FetchTransactions(ctx context.Context) ([]feeddomain.Transaction, error)
}

type FeedService struct {
	cfg    config.Feed
	Client feedclient.Client
}

func New(cfg config.Feed, client feedclient.Client) FeedIntegrator {
	return &FeedService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchTransactions baixa o feed e rejeita o lote inteiro se algum registro for inválido
func (s *FeedService) FetchTransactions(ctx context.Context) ([]feeddomain.Transaction, error) {
	logger := log.ForContext(ctx).WithField("feed_url", s.cfg.URL)

	resp, err := s.Client.GetTransactions(ctx)
	if err != nil {
		logger.WithError(err).Error("feed: erro ao baixar transações")
		return nil, err
	}

	for _, transaction := range resp {
		if err := transaction.Validate(); err != nil {
			logger.WithError(err).Warn("feed: lote rejeitado")
			return nil, err
		}
	}

	logger.WithField("count", len(resp)).Info("feed: transações baixadas")

	return resp, nil
}
