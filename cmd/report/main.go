// Command report prints the console statistics report for one country
// followed by the leaders in each metric.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/okian/fifastats/internal/adapters/loader"
	"github.com/okian/fifastats/internal/config"
	"github.com/okian/fifastats/internal/domain/types"
	"github.com/okian/fifastats/internal/report"
	"github.com/okian/fifastats/pkg/logger"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const (
	msgNotFound = "Data file not found. Please check the file path."
	msgFailed   = "An error occurred while processing the data"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args on top of the loaded configuration and writes the report.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return exitError
	}

	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		dataPath = fs.String("data", cfg.DataPath, "Path to the ranking file (.csv, .xlsx, .xls)")
		country  = fs.String("country", cfg.DefaultCountry, "Country to show in detail")
		lang     = fs.String("lang", cfg.Language, "Language tag for number formatting")
		charset  = fs.String("charset", cfg.Charset, "Text encoding of CSV input")
		sheet    = fs.String("sheet", cfg.Sheet, "Workbook sheet name")
		dump     = fs.Bool("dump", false, "Dump every country summary after the report")
		verbose  = fs.Bool("v", false, "Log load diagnostics to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	log := logger.Nop()
	if *verbose {
		if err := logger.Init(logger.WithWriter(stderr)); err == nil {
			_ = logger.SetLevelString("debug")
			log = logger.Named("report")
		}
	}

	c, err := loader.LoadCollection(ctx, *dataPath,
		loader.WithCharset(*charset),
		loader.WithSheet(*sheet),
		loader.WithLogger(log),
	)
	switch {
	case errors.Is(err, loader.ErrFileNotFound):
		fmt.Fprintln(stderr, msgNotFound)
		return exitError
	case err != nil:
		fmt.Fprintf(stderr, "%s: %v\n", msgFailed, err)
		return exitError
	}

	report.New(stdout, report.WithLanguage(*lang)).Full(c, *country)

	if *dump {
		records := c.Records()
		summaries := make([]types.CountrySummary, len(records))
		for i, r := range records {
			summaries[i] = r.Summary()
		}
		fmt.Fprintln(stdout)
		spew.Fdump(stdout, summaries)
	}
	return exitOK
}
