package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceRange é uma das faixas fixas do histograma de preços.
// Min e Max são os rótulos; a pertinência é definida por UpperBound.
type PriceRange struct {
	Min int
	Max int // 0 na última faixa (sem limite superior)
}

// PriceRangeCount é a contagem de transações em uma faixa
type PriceRangeCount struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}

var PriceRanges = []PriceRange{
	{Min: 0, Max: 100},
	{Min: 101, Max: 200},
	{Min: 201, Max: 300},
	{Min: 301, Max: 400},
	{Min: 401, Max: 500},
	{Min: 501, Max: 600},
	{Min: 601, Max: 700},
	{Min: 701, Max: 800},
	{Min: 801, Max: 900},
	{Min: 901},
}

// LastBucket é o índice da faixa "901-above"
var LastBucket = len(PriceRanges) - 1

func (r PriceRange) Label() string {
	if r.Max == 0 {
		return fmt.Sprintf("%d-above", r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// UpperBound é o limite superior inclusivo da faixa. A faixa k contém
// os preços em (UpperBound(k-1), UpperBound(k)].
func (r PriceRange) UpperBound() (int, bool) {
	return r.Max, r.Max != 0
}

// BucketIndex retorna a faixa de um preço: <= 100 na primeira, > 900 na última
func BucketIndex(price decimal.Decimal) int {
	for i, r := range PriceRanges {
		upper, bounded := r.UpperBound()
		if !bounded || price.LessThanOrEqual(decimal.NewFromInt(int64(upper))) {
			return i
		}
	}
	return LastBucket
}

// NewBarChart monta as dez faixas, em ordem, a partir das contagens por índice
func NewBarChart(counts map[int]int64) []PriceRangeCount {
	chart := make([]PriceRangeCount, 0, len(PriceRanges))
	for i, r := range PriceRanges {
		chart = append(chart, PriceRangeCount{
			Range: r.Label(),
			Count: counts[i],
		})
	}
	return chart
}
