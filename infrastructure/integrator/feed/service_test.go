package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	feeddomain "github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/feed/domain"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/feed/feedclient"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/feed/mocks"
	"github.com/vfg2006/transaction-dashboard-api/internal/config"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestFeedService_FetchTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(config.Feed{URL: "http://feed.local"}, mockClient)

	date := &feeddomain.Time{Time: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)}

	t.Run("Feed válido", func(t *testing.T) {
		mockClient.EXPECT().
			GetTransactions(gomock.Any()).
			Return(feedclient.TransactionsResponse{
				{ID: 1, Price: decimal.NewFromInt(150), DateOfSale: date},
				{ID: 2, Price: decimal.NewFromInt(950), DateOfSale: date},
			}, nil)

		transactions, err := service.FetchTransactions(context.Background())
		require.NoError(t, err)
		assert.Len(t, transactions, 2)
	})

	t.Run("Registro inválido rejeita o lote", func(t *testing.T) {
		mockClient.EXPECT().
			GetTransactions(gomock.Any()).
			Return(feedclient.TransactionsResponse{
				{ID: 1, Price: decimal.NewFromInt(150), DateOfSale: date},
				{ID: 2, Price: decimal.NewFromInt(-5), DateOfSale: date},
			}, nil)

		transactions, err := service.FetchTransactions(context.Background())
		assert.ErrorIs(t, err, domain.ErrNegativePrice)
		assert.Nil(t, transactions)
	})

	t.Run("Erro do cliente", func(t *testing.T) {
		clientErr := errors.New("timeout")
		mockClient.EXPECT().
			GetTransactions(gomock.Any()).
			Return(nil, clientErr)

		_, err := service.FetchTransactions(context.Background())
		assert.ErrorIs(t, err, clientErr)
	})
}
