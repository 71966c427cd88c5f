package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total   int64
		perPage int
		want    int64
	}{
		{total: 0, perPage: 10, want: 0},
		{total: 1, perPage: 10, want: 1},
		{total: 10, perPage: 10, want: 1},
		{total: 11, perPage: 10, want: 2},
		{total: 60, perPage: 7, want: 9},
		{total: 5, perPage: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.perPage), "total=%d perPage=%d", tt.total, tt.perPage)
	}
}

func TestTransactionFilters_Offset(t *testing.T) {
	assert.Equal(t, 0, (&TransactionFilters{Page: 1, PerPage: 10}).Offset())
	assert.Equal(t, 20, (&TransactionFilters{Page: 3, PerPage: 10}).Offset())
	assert.Equal(t, 0, (&TransactionFilters{Page: 0, PerPage: 10}).Offset())
	assert.Equal(t, 0, (&TransactionFilters{Page: 5, PerPage: 0}).Offset())

	// Deslocamento que estouraria int satura em vez de ficar negativo
	assert.Equal(t, math.MaxInt, (&TransactionFilters{Page: math.MaxInt/2 + 2, PerPage: 2}).Offset())
	assert.Equal(t, math.MaxInt, (&TransactionFilters{Page: math.MaxInt, PerPage: 100}).Offset())
	assert.Equal(t, math.MaxInt-1, (&TransactionFilters{Page: math.MaxInt/2 + 1, PerPage: 2}).Offset())
}

func TestTransactionFilters_SearchPrice(t *testing.T) {
	price, ok := (&TransactionFilters{Search: " 150 "}).SearchPrice()
	assert.True(t, ok)
	assert.True(t, price.Equal(decimal.NewFromInt(150)))

	price, ok = (&TransactionFilters{Search: "329.85"}).SearchPrice()
	assert.True(t, ok)
	assert.Equal(t, "329.85", price.String())

	_, ok = (&TransactionFilters{Search: "jacket"}).SearchPrice()
	assert.False(t, ok)

	_, ok = (&TransactionFilters{Search: ""}).SearchPrice()
	assert.False(t, ok)
}

func TestStatisticsJSONUsesNumbers(t *testing.T) {
	body, err := json.Marshal(Statistics{TotalSale: decimal.NewFromInt(150), SoldItems: 1})
	require.NoError(t, err)

	assert.JSONEq(t, `{"totalSale":150,"soldItems":1,"notSoldItems":0}`, string(body))
}
