package dashboard

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"github.com/vfg2006/transaction-dashboard-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultMonth   = "March"
	DefaultPerPage = 10

	// ErrorMessage é a única mensagem exibida em qualquer falha de carregamento
	ErrorMessage = "Failed to fetch data. Please try again later."
)

// State é o estado do painel: filtros escolhidos e último resultado carregado
type State struct {
	Month        string
	Search       string
	Page         int
	Transactions []*domain.Transaction
	Total        int64
	TotalPages   int64
	Statistics   domain.Statistics
	BarChart     []domain.PriceRangeCount
	PieChart     []domain.CategoryCount
	Error        string
}

// View mantém o estado do painel e recarrega os dados a cada mudança de filtro
type View struct {
	client Client

	mu    sync.RWMutex
	state State
}

func NewView(client Client) *View {
	v := &View{client: client}
	v.state.Month = DefaultMonth
	v.state.Page = 1
	v.resetData()
	return v
}

// State retorna uma cópia do estado atual
func (v *View) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()

	state := v.state
	state.Transactions = append([]*domain.Transaction(nil), v.state.Transactions...)
	state.BarChart = append([]domain.PriceRangeCount(nil), v.state.BarChart...)
	state.PieChart = append([]domain.CategoryCount(nil), v.state.PieChart...)
	return state
}

// SetMonth troca o mês e volta para a primeira página
func (v *View) SetMonth(ctx context.Context, month string) error {
	v.mu.Lock()
	v.state.Month = month
	v.state.Page = 1
	v.mu.Unlock()

	return v.Refresh(ctx)
}

// SetSearch troca a busca e volta para a primeira página
func (v *View) SetSearch(ctx context.Context, search string) error {
	v.mu.Lock()
	v.state.Search = search
	v.state.Page = 1
	v.mu.Unlock()

	return v.Refresh(ctx)
}

// SetFilters troca mês e busca de uma vez, com uma única recarga
func (v *View) SetFilters(ctx context.Context, month, search string) error {
	v.mu.Lock()
	v.state.Month = month
	v.state.Search = search
	v.state.Page = 1
	v.mu.Unlock()

	return v.Refresh(ctx)
}

func (v *View) SetPage(ctx context.Context, page int) error {
	v.mu.Lock()
	v.state.Page = v.clampPage(page)
	v.mu.Unlock()

	return v.Refresh(ctx)
}

func (v *View) NextPage(ctx context.Context) error {
	v.mu.Lock()
	v.state.Page = v.clampPage(v.state.Page + 1)
	v.mu.Unlock()

	return v.Refresh(ctx)
}

func (v *View) PrevPage(ctx context.Context) error {
	v.mu.Lock()
	v.state.Page = v.clampPage(v.state.Page - 1)
	v.mu.Unlock()

	return v.Refresh(ctx)
}

// Refresh busca as transações e os dados combinados em paralelo.
// Qualquer falha descarta os dois resultados.
func (v *View) Refresh(ctx context.Context) error {
	v.mu.RLock()
	query := TransactionQuery{
		Month:   v.state.Month,
		Search:  v.state.Search,
		Page:    v.state.Page,
		PerPage: DefaultPerPage,
	}
	v.mu.RUnlock()

	var (
		page     *domain.TransactionPage
		combined *domain.CombinedData
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = v.client.FetchTransactions(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		combined, err = v.client.FetchCombinedData(gctx, query.Month)
		return err
	})

	err := g.Wait()

	v.mu.Lock()
	defer v.mu.Unlock()

	if err != nil {
		log.L.WithError(err).WithField("month", query.Month).Warn("dashboard: erro ao carregar dados")
		v.resetData()
		v.state.Error = ErrorMessage
		return err
	}

	v.state.Error = ""
	v.state.Transactions = page.Transactions
	v.state.Total = page.Total
	v.state.TotalPages = page.TotalPages
	v.state.BarChart = combined.BarChart
	v.state.PieChart = combined.PieChart
	if combined.Statistics != nil {
		v.state.Statistics = *combined.Statistics
	} else {
		v.state.Statistics = domain.Statistics{TotalSale: decimal.Zero}
	}

	return nil
}

// clampPage mantém a página em [1, totalPages]; deve ser chamado com o lock
func (v *View) clampPage(page int) int {
	last := int(max(v.state.TotalPages, 1))
	return min(max(page, 1), last)
}

// resetData volta os dados carregados para o estado inicial; deve ser chamado com o lock
func (v *View) resetData() {
	v.state.Transactions = nil
	v.state.Total = 0
	v.state.TotalPages = 1
	v.state.Statistics = domain.Statistics{TotalSale: decimal.Zero}
	v.state.BarChart = nil
	v.state.PieChart = nil
}
