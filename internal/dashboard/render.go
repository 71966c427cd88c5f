package dashboard

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
)

const (
	descriptionWidth = 40
	dateLayout       = time.DateOnly
)

// Render escreve o painel completo: filtros, transações, estatísticas e os dois gráficos
func Render(w io.Writer, state State) {
	fmt.Fprintf(w, "Month: %s | Search: %q | Page %d of %d\n\n", state.Month, state.Search, state.Page, max(state.TotalPages, 1))

	if state.Error != "" {
		fmt.Fprintf(w, "%s\n\n", state.Error)
	}

	renderTransactions(w, state)
	renderStatistics(w, state)
	renderBarChart(w, state)
	renderPieChart(w, state)
}

func renderTransactions(w io.Writer, state State) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Title", "Description", "Price", "Category", "Sold", "Date of Sale"})
	table.SetAutoWrapText(false)

	for _, transaction := range state.Transactions {
		table.Append([]string{
			strconv.FormatInt(transaction.ProductID, 10),
			transaction.Title,
			truncate(transaction.Description, descriptionWidth),
			transaction.Price.StringFixed(2),
			transaction.Category,
			yesNo(transaction.Sold),
			transaction.DateOfSale.UTC().Format(dateLayout),
		})
	}

	table.SetFooter([]string{"", "", "", "", "", "Total", strconv.FormatInt(state.Total, 10)})
	table.Render()
	fmt.Fprintln(w)
}

func renderStatistics(w io.Writer, state State) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Total Sale", "Sold Items", "Not Sold Items"})
	table.Append([]string{
		state.Statistics.TotalSale.StringFixed(2),
		strconv.FormatInt(state.Statistics.SoldItems, 10),
		strconv.FormatInt(state.Statistics.NotSoldItems, 10),
	})
	table.Render()
	fmt.Fprintln(w)
}

func renderBarChart(w io.Writer, state State) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Price Range", "Items"})
	for _, item := range state.BarChart {
		table.Append([]string{item.Range, strconv.FormatInt(item.Count, 10)})
	}
	table.Render()
	fmt.Fprintln(w)
}

func renderPieChart(w io.Writer, state State) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Items"})
	for _, item := range state.PieChart {
		table.Append([]string{item.Category, strconv.FormatInt(item.Count, 10)})
	}
	table.Render()
}

func truncate(text string, width int) string {
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	return string(runes[:width-3]) + "..."
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
