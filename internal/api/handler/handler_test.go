package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transaction-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	schedmocks "github.com/vfg2006/transaction-dashboard-api/internal/scheduler/mocks"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/mocks"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockReporter, *schedmocks.MockFeedSyncer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	syncer := schedmocks.NewMockFeedSyncer(ctrl)

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Initialization(syncer)...),
		router.WithRoutes(Transactions(reporter)...),
	)

	return rt, reporter, syncer
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestListTransactions(t *testing.T) {
	rt, reporter, _ := newTestRouter(t)

	t.Run("Parâmetros repassados ao serviço", func(t *testing.T) {
		expected := &domain.TransactionFilters{Month: 3, Search: "bag", Page: 2, PerPage: 5}

		reporter.EXPECT().
			ListTransactions(gomock.Any(), expected).
			Return(&domain.TransactionPage{
				Transactions: []*domain.Transaction{{
					ID:         "abc",
					ProductID:  1,
					Title:      "Bag",
					Price:      decimal.RequireFromString("329.85"),
					Category:   "bags",
					DateOfSale: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
				}},
				Total:      6,
				Page:       2,
				PerPage:    5,
				TotalPages: 2,
			}, nil)

		rec := serve(rt, http.MethodGet, "/api/transactions?month=March&search=bag&page=2&perPage=5")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{
			"transactions": [{
				"id": "abc",
				"productId": 1,
				"title": "Bag",
				"description": "",
				"price": 329.85,
				"category": "bags",
				"sold": false,
				"dateOfSale": "2024-03-05T00:00:00Z"
			}],
			"total": 6,
			"page": 2,
			"perPage": 5,
			"totalPages": 2
		}`, rec.Body.String())
	})

	t.Run("Sem paginação usa os valores padrão", func(t *testing.T) {
		expected := &domain.TransactionFilters{Month: 4, Page: 1, PerPage: 0}

		reporter.EXPECT().
			ListTransactions(gomock.Any(), expected).
			Return(&domain.TransactionPage{Transactions: []*domain.Transaction{}, Page: 1, PerPage: 10}, nil)

		rec := serve(rt, http.MethodGet, "/api/transactions?month=april")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Página inválida", func(t *testing.T) {
		rec := serve(rt, http.MethodGet, "/api/transactions?month=March&page=abc")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"VAL_001"`)
		assert.Contains(t, rec.Body.String(), "page")
	})

	t.Run("perPage negativo", func(t *testing.T) {
		rec := serve(rt, http.MethodGet, "/api/transactions?perPage=-1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Erro do banco", func(t *testing.T) {
		reporter.EXPECT().
			ListTransactions(gomock.Any(), gomock.Any()).
			Return(nil, domain.NewError(domain.ErrKindStoreUnavailable, "reporting.ListTransactions", errors.New("connection refused")))

		rec := serve(rt, http.MethodGet, "/api/transactions?month=March")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"code":"SRV_002","error":"connection refused"}`, rec.Body.String())
	})
}

func TestMonthAggregations(t *testing.T) {
	rt, reporter, _ := newTestRouter(t)

	t.Run("Estatísticas", func(t *testing.T) {
		reporter.EXPECT().
			GetStatistics(gomock.Any(), domain.Month(3)).
			Return(&domain.Statistics{TotalSale: decimal.NewFromInt(150), SoldItems: 1}, nil)

		rec := serve(rt, http.MethodGet, "/api/statistics?month=March")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"totalSale":150,"soldItems":1,"notSoldItems":0}`, rec.Body.String())
	})

	t.Run("Mês desconhecido não é erro", func(t *testing.T) {
		reporter.EXPECT().
			GetStatistics(gomock.Any(), domain.UnknownMonth).
			Return(&domain.Statistics{TotalSale: decimal.Zero}, nil)

		rec := serve(rt, http.MethodGet, "/api/statistics?month=Smarch")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Histograma", func(t *testing.T) {
		reporter.EXPECT().
			GetBarChart(gomock.Any(), domain.Month(3)).
			Return(domain.NewBarChart(map[int]int64{1: 1}), nil)

		rec := serve(rt, http.MethodGet, "/api/bar-chart?month=March")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `{"range":"101-200","count":1}`)
		assert.Contains(t, rec.Body.String(), `{"range":"901-above","count":0}`)
	})

	t.Run("Categorias", func(t *testing.T) {
		reporter.EXPECT().
			GetPieChart(gomock.Any(), domain.Month(3)).
			Return([]domain.CategoryCount{{Category: "A", Count: 1}}, nil)

		rec := serve(rt, http.MethodGet, "/api/pie-chart?month=March")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"category":"A","count":1}]`, rec.Body.String())
	})

	t.Run("Dados combinados", func(t *testing.T) {
		reporter.EXPECT().
			GetCombinedData(gomock.Any(), domain.Month(3)).
			Return(&domain.CombinedData{
				Statistics: &domain.Statistics{TotalSale: decimal.NewFromInt(150), SoldItems: 1},
				BarChart:   domain.NewBarChart(nil),
				PieChart:   []domain.CategoryCount{},
			}, nil)

		rec := serve(rt, http.MethodGet, "/api/combined-data?month=3")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"statistics":{"totalSale":150,"soldItems":1,"notSoldItems":0}`)
		assert.Contains(t, rec.Body.String(), `"pieChart":[]`)
	})

	t.Run("Erro interno", func(t *testing.T) {
		reporter.EXPECT().
			GetPieChart(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("boom"))

		rec := serve(rt, http.MethodGet, "/api/pie-chart?month=March")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"code":"SRV_001","error":"boom"}`, rec.Body.String())
	})
}

func TestInitialize(t *testing.T) {
	rt, _, syncer := newTestRouter(t)

	t.Run("Recarga concluída", func(t *testing.T) {
		syncer.EXPECT().
			Initialize(gomock.Any()).
			Return(&domain.SeedResult{Message: "Database initialized successfully", Inserted: 60}, nil)

		rec := serve(rt, http.MethodPost, "/api/initialize")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Database initialized successfully","inserted":60}`, rec.Body.String())
	})

	t.Run("Feed indisponível", func(t *testing.T) {
		syncer.EXPECT().
			Initialize(gomock.Any()).
			Return(nil, domain.NewError(domain.ErrKindUpstreamFetch, "seeding.Initialize", errors.New("falha ao obter o feed: timeout")))

		rec := serve(rt, http.MethodPost, "/api/initialize")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.JSONEq(t, `{"code":"SRV_003","error":"falha ao obter o feed: timeout"}`, rec.Body.String())
	})

	t.Run("GET não é permitido", func(t *testing.T) {
		rec := serve(rt, http.MethodGet, "/api/initialize")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("Recarga assíncrona iniciada", func(t *testing.T) {
		syncer.EXPECT().TriggerManualSync().Return(true)

		rec := serve(rt, http.MethodPost, "/api/initialize/async")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"message":"Feed sync started"}`, rec.Body.String())
	})

	t.Run("Recarga assíncrona com outra em andamento", func(t *testing.T) {
		syncer.EXPECT().TriggerManualSync().Return(false)

		rec := serve(rt, http.MethodPost, "/api/initialize/async")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"code":"REQ_409","error":"Feed sync already in progress"}`, rec.Body.String())
	})

	t.Run("Status da última recarga", func(t *testing.T) {
		completedAt := time.Date(2024, 3, 5, 3, 0, 0, 0, time.UTC)
		syncer.EXPECT().
			GetStatus().
			Return(domain.FeedSyncStatus{CronSchedule: "0 3 * * *", LastCompletedAt: &completedAt, LastInserted: 60})

		rec := serve(rt, http.MethodGet, "/api/initialize/status")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"enabled": false,
			"cronSchedule": "0 3 * * *",
			"running": false,
			"lastCompletedAt": "2024-03-05T03:00:00Z",
			"lastInserted": 60
		}`, rec.Body.String())
	})
}

func TestHealthcheck(t *testing.T) {
	rt, _, _ := newTestRouter(t)

	rec := serve(rt, http.MethodGet, "/healthcheck")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
