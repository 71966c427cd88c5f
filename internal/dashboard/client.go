// Package dashboard contém o cliente de terminal do painel de transações
package dashboard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"github.com/vfg2006/transaction-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 4096
)

// TransactionQuery são os filtros enviados para /api/transactions
type TransactionQuery struct {
	Month   string
	Search  string
	Page    int
	PerPage int
}

type Client interface {
	FetchTransactions(ctx context.Context, query TransactionQuery) (*domain.TransactionPage, error)
	FetchCombinedData(ctx context.Context, month string) (*domain.CombinedData, error)
}

type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (c *APIClient) FetchTransactions(ctx context.Context, query TransactionQuery) (*domain.TransactionPage, error) {
	params := url.Values{}
	params.Set("month", query.Month)
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.PerPage > 0 {
		params.Set("perPage", strconv.Itoa(query.PerPage))
	}

	page := &domain.TransactionPage{}
	if err := c.get(ctx, "/api/transactions", params, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (c *APIClient) FetchCombinedData(ctx context.Context, month string) (*domain.CombinedData, error) {
	params := url.Values{}
	params.Set("month", month)

	combined := &domain.CombinedData{}
	if err := c.get(ctx, "/api/combined-data", params, combined); err != nil {
		return nil, err
	}
	return combined, nil
}

func (c *APIClient) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		var apiErr apiErrors.APIError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s: %s (%s)", path, apiErr.Message, apiErr.Code)
		}
		return fmt.Errorf("%s: requisição falhou com status: %s", path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: erro ao decodificar a resposta: %w", path, err)
	}

	return nil
}
