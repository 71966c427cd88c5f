package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vfg2006/transaction-dashboard-api/internal/config"
	"github.com/vfg2006/transaction-dashboard-api/internal/dashboard"
	"github.com/vfg2006/transaction-dashboard-api/pkg/log"
)

const helpText = `Commands:
  n                 next page
  p                 previous page
  g <page>          go to page
  m <month>         change month (e.g. March, mar, 3)
  s [text]          search title/description/price; empty clears
  e [dir]           export bar-chart.png and pie-chart.png (default: .)
  r                 refresh
  h                 help
  q                 quit
`

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel, cfg.App.LogFormat, os.Stderr)

	apiURL := flag.String("api", cfg.Dashboard.APIURL, "Base URL of the transactions API")
	month := flag.String("month", dashboard.DefaultMonth, "Initial month")
	search := flag.String("search", "", "Initial search text")
	exportDir := flag.String("export", "", "Export the charts to this directory and exit")
	interactive := flag.Bool("interactive", true, "Read commands from stdin after the first render")
	flag.Parse()

	ctx := context.Background()
	view := dashboard.NewView(dashboard.NewClient(*apiURL))

	// Falhas ficam registradas no estado da view e aparecem na renderização
	_ = view.SetFilters(ctx, *month, *search)

	dashboard.Render(os.Stdout, view.State())

	if *exportDir != "" {
		exportCharts(os.Stdout, *exportDir, view.State())
		return
	}

	if !*interactive {
		return
	}

	fmt.Print(helpText)
	run(ctx, view, os.Stdin, os.Stdout)
}

func run(ctx context.Context, view *dashboard.View, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}

		command, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch command {
		case "":
			continue
		case "q", "quit", "exit":
			return
		case "h", "help":
			fmt.Fprint(out, helpText)
			continue
		case "n":
			_ = view.NextPage(ctx)
		case "p":
			_ = view.PrevPage(ctx)
		case "g":
			page, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(out, "invalid page %q\n", arg)
				continue
			}
			_ = view.SetPage(ctx, page)
		case "m":
			_ = view.SetMonth(ctx, arg)
		case "s":
			_ = view.SetSearch(ctx, arg)
		case "r":
			_ = view.Refresh(ctx)
		case "e":
			dir := arg
			if dir == "" {
				dir = "."
			}
			exportCharts(out, dir, view.State())
			continue
		default:
			fmt.Fprintf(out, "unknown command %q (h for help)\n", command)
			continue
		}

		dashboard.Render(out, view.State())
	}
}

func exportCharts(out io.Writer, dir string, state dashboard.State) {
	paths, err := dashboard.ExportCharts(dir, state)
	for _, path := range paths {
		fmt.Fprintf(out, "chart saved to %s\n", path)
	}
	if err != nil {
		fmt.Fprintf(out, "chart export failed: %v\n", err)
	}
}
