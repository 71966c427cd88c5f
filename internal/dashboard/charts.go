package dashboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
)

const (
	BarChartFile = "bar-chart.png"
	PieChartFile = "pie-chart.png"

	chartWidth  = 1100
	chartHeight = 500
)

var ErrEmptyChart = errors.New("gráfico sem valores para exportar")

// ExportCharts grava os dois gráficos do mês atual como PNG em dir
func ExportCharts(dir string, state State) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório de saída: %w", err)
	}

	barPath := filepath.Join(dir, BarChartFile)
	if err := writeBarChart(barPath, state.Month, state.BarChart); err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}

	piePath := filepath.Join(dir, PieChartFile)
	if err := writePieChart(piePath, state.Month, state.PieChart); err != nil {
		return []string{barPath}, fmt.Errorf("pie chart: %w", err)
	}

	return []string{barPath, piePath}, nil
}

func writeBarChart(path, month string, items []domain.PriceRangeCount) error {
	var (
		bars     []chart.Value
		maxCount int64
	)
	for _, item := range items {
		bars = append(bars, chart.Value{
			Label: item.Range,
			Value: float64(item.Count),
		})
		maxCount = max(maxCount, item.Count)
	}

	if maxCount == 0 {
		return ErrEmptyChart
	}

	barChart := chart.BarChart{
		Title: fmt.Sprintf("Transactions by Price Range - %s", month),
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   70,
		BarSpacing: 30,
		Bars:       bars,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
		},
	}

	return renderPNG(path, barChart.Render)
}

func writePieChart(path, month string, items []domain.CategoryCount) error {
	var values []chart.Value
	for _, item := range items {
		if item.Count == 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%d)", item.Category, item.Count),
			Value: float64(item.Count),
		})
	}

	if len(values) == 0 {
		return ErrEmptyChart
	}

	pieChart := chart.PieChart{
		Title:  fmt.Sprintf("Transactions by Category - %s", month),
		Width:  chartHeight,
		Height: chartHeight,
		Values: values,
	}

	return renderPNG(path, pieChart.Render)
}

func renderPNG(path string, render func(chart.RendererProvider, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo: %w", err)
	}

	return writePNG(f, render)
}

// writePNG fecha o destino em qualquer caso e devolve o erro do Close quando a renderização passou
func writePNG(w io.WriteCloser, render func(chart.RendererProvider, io.Writer) error) error {
	if err := render(chart.PNG, w); err != nil {
		_ = w.Close()
		return fmt.Errorf("erro ao renderizar: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("erro ao gravar arquivo: %w", err)
	}

	return nil
}
