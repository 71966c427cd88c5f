package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/feed"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/feed/feedclient"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/repository/memory"
	"github.com/vfg2006/transaction-dashboard-api/internal/config"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"github.com/vfg2006/transaction-dashboard-api/internal/scheduler"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/transaction-dashboard-api/internal/usecases/seeding"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const feedPayload = `[
	{"id":1,"title":"A","price":150,"description":"first","category":"A","sold":true,"dateOfSale":"2024-03-05"},
	{"id":2,"title":"B","price":950,"description":"second","category":"B","sold":false,"dateOfSale":"2024-04-01"}
]`

func newTestServer(t *testing.T, payload string) (*httptest.Server, *memory.TransactionStore) {
	t.Helper()

	feedServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(feedServer.Close)

	cfg := &config.Config{
		Server:     config.Server{AllowedOrigins: []string{"*"}},
		Feed:       config.Feed{URL: feedServer.URL, Timeout: time.Second},
		Pagination: config.Pagination{DefaultPerPage: 10, MaxPerPage: 100},
	}

	store := memory.NewTransactionStore()
	feedService := feed.New(cfg.Feed, feedclient.NewClient(cfg.Feed))
	seeder := seeding.NewService(feedService, store)
	feedSync := scheduler.NewFeedSyncService(seeder, cfg.FeedSync)
	reporter := reporting.NewService(cfg.Pagination, store)

	server := httptest.NewServer(NewHandler(cfg, reporter, feedSync))
	t.Cleanup(server.Close)

	return server, store
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestServer_SeedAndQuery(t *testing.T) {
	server, store := newTestServer(t, feedPayload)

	for i := 0; i < 2; i++ {
		resp, err := http.Post(server.URL+"/api/initialize", "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		total, err := store.CountAll(testContext(t))
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	}

	status, body := get(t, server.URL+"/api/statistics?month=March")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"totalSale":150,"soldItems":1,"notSoldItems":0}`, body)

	status, body = get(t, server.URL+"/api/bar-chart?month=March")
	assert.Equal(t, http.StatusOK, status)

	var chart []domain.PriceRangeCount
	require.NoError(t, json.Unmarshal([]byte(body), &chart))
	require.Len(t, chart, 10)
	for _, item := range chart {
		if item.Range == "101-200" {
			assert.Equal(t, int64(1), item.Count)
		} else {
			assert.Zero(t, item.Count, item.Range)
		}
	}

	status, body = get(t, server.URL+"/api/pie-chart?month=April")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"category":"B","count":1}]`, body)

	status, body = get(t, server.URL+"/api/transactions?month=March&search=FIRST")
	assert.Equal(t, http.StatusOK, status)

	var page domain.TransactionPage
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, int64(1), page.TotalPages)
	assert.Equal(t, 10, page.PerPage)
	require.Len(t, page.Transactions, 1)
	assert.Equal(t, "A", page.Transactions[0].Title)

	status, body = get(t, server.URL+"/api/combined-data?month=March")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"pieChart":[{"category":"A","count":1}]`)

	status, body = get(t, server.URL+"/api/initialize/status")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"lastInserted":2`)
}

func TestServer_AsyncInitialize(t *testing.T) {
	server, store := newTestServer(t, feedPayload)

	resp, err := http.Post(server.URL+"/api/initialize/async", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	assert.Eventually(t, func() bool {
		total, err := store.CountAll(testContext(t))
		return err == nil && total == 2
	}, 2*time.Second, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		resp, err := http.Get(server.URL + "/api/initialize/status")
		if err != nil {
			return false
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		return err == nil && strings.Contains(string(body), `"running":false`) && strings.Contains(string(body), `"lastInserted":2`)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestServer_HugePageReturnsEmptyPage(t *testing.T) {
	server, _ := newTestServer(t, feedPayload)

	resp, err := http.Post(server.URL+"/api/initialize", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	status, body := get(t, server.URL+"/api/transactions?month=March&page=4611686018427387905&perPage=2")
	require.Equal(t, http.StatusOK, status, body)

	var page domain.TransactionPage
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	assert.Empty(t, page.Transactions)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 4611686018427387905, page.Page)
}

func TestServer_InvalidFeedKeepsStore(t *testing.T) {
	server, store := newTestServer(t, `[{"id":1,"title":"A","price":-1,"category":"A","sold":true,"dateOfSale":"2024-03-05"}]`)

	resp, err := http.Post(server.URL+"/api/initialize", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	total, err := store.CountAll(testContext(t))
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestServer_Cors(t *testing.T) {
	server, _ := newTestServer(t, feedPayload)

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/api/statistics", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

// testContext mirrors testing.T.Context (Go 1.24): canceled when the test ends.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
