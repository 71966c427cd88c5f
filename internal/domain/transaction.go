// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Preços e totais são serializados como números JSON, não como string
	decimal.MarshalJSONWithoutQuotes = true
}

type Transaction struct {
	ID          string          `json:"id"`
	ProductID   int64           `json:"productId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Sold        bool            `json:"sold"`
	DateOfSale  time.Time       `json:"dateOfSale"`
}

// TransactionFilters agrupa os parâmetros da listagem de transações
type TransactionFilters struct {
	Month   Month
	Search  string
	Page    int
	PerPage int
}

// Offset retorna quantos registros devem ser pulados para a página atual.
// Páginas cujo deslocamento não cabe em int saturam em math.MaxInt.
func (f *TransactionFilters) Offset() int {
	if f.Page < 1 || f.PerPage < 1 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.PerPage {
		return math.MaxInt
	}
	return (f.Page - 1) * f.PerPage
}

// SearchPrice retorna o preço procurado quando a busca é numérica
func (f *TransactionFilters) SearchPrice() (decimal.Decimal, bool) {
	search := strings.TrimSpace(f.Search)
	if search == "" {
		return decimal.Zero, false
	}

	if _, err := strconv.ParseFloat(search, 64); err != nil {
		return decimal.Zero, false
	}

	price, err := decimal.NewFromString(search)
	if err != nil {
		return decimal.Zero, false
	}

	return price, true
}

type TransactionPage struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int64          `json:"total"`
	Page         int            `json:"page"`
	PerPage      int            `json:"perPage"`
	TotalPages   int64          `json:"totalPages"`
}

// TotalPages calcula ceil(total / perPage)
func TotalPages(total int64, perPage int) int64 {
	if perPage <= 0 || total <= 0 {
		return 0
	}

	pp := int64(perPage)
	return (total + pp - 1) / pp
}

type Statistics struct {
	TotalSale    decimal.Decimal `json:"totalSale"`
	SoldItems    int64           `json:"soldItems"`
	NotSoldItems int64           `json:"notSoldItems"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type CombinedData struct {
	Statistics *Statistics       `json:"statistics"`
	BarChart   []PriceRangeCount `json:"barChart"`
	PieChart   []CategoryCount   `json:"pieChart"`
}

// SeedResult é o resultado de uma carga completa a partir do feed
type SeedResult struct {
	Message  string `json:"message"`
	Inserted int    `json:"inserted"`
}
