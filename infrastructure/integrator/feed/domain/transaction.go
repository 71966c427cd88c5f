package feeddomain

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
)

// Formatos de data aceitos em dateOfSale, em ordem de tentativa
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// Transaction é um registro do feed de transações
type Transaction struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Sold        bool            `json:"sold"`
	DateOfSale  *Time           `json:"dateOfSale"`
}

// Validate garante as invariantes de uma transação antes da carga
func (t Transaction) Validate() error {
	if t.Price.IsNegative() {
		return fmt.Errorf("feed: transação %d: %w", t.ID, domain.ErrNegativePrice)
	}
	if t.DateOfSale == nil || t.DateOfSale.IsZero() {
		return fmt.Errorf("feed: transação %d: %w", t.ID, domain.ErrMissingDateOfSale)
	}
	return nil
}

func (t Transaction) ToDomain(id string) *domain.Transaction {
	transaction := &domain.Transaction{
		ID:          id,
		ProductID:   t.ID,
		Title:       t.Title,
		Description: t.Description,
		Price:       t.Price,
		Category:    t.Category,
		Sold:        t.Sold,
	}
	if t.DateOfSale != nil {
		transaction.DateOfSale = t.DateOfSale.UTC()
	}
	return transaction
}

// Time aceita datas com ou sem timezone e datas puras; sem timezone assume UTC
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("feed: dateOfSale inválido %s", string(data))
	}

	if raw == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}

	return fmt.Errorf("feed: dateOfSale com formato não suportado %q", raw)
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.UTC().Format(time.RFC3339))), nil
}
