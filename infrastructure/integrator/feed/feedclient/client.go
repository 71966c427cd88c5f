package feedclient

import (
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	feeddomain "github.com/vfg2006/transaction-dashboard-api/infrastructure/integrator/feed/domain"
	"github.com/vfg2006/transaction-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxErrorBodySize = 512

type TransactionsResponse []feeddomain.Transaction

type Client interface {
	GetTransactions(ctx context.Context) (TransactionsResponse, error)
}

type FeedClient struct {
	httpClient *http.Client
	url        string
}

func NewClient(cfg config.Feed) Client {
	return &FeedClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		url: cfg.URL,
	}
}

// GetTransactions baixa o feed completo de transações
func (c *FeedClient) GetTransactions(ctx context.Context) (TransactionsResponse, error) {
	var response TransactionsResponse

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return response, fmt.Errorf("requisição falhou com status: %s: %s", resp.Status, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
