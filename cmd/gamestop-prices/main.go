package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/scj643/pricing-csv/internal/adapters/feeds"
	"github.com/scj643/pricing-csv/internal/application/reprice"
	"github.com/scj643/pricing-csv/internal/cli"
	"github.com/scj643/pricing-csv/internal/domain/record"
	"github.com/scj643/pricing-csv/internal/infrastructure/config"
	"github.com/scj643/pricing-csv/internal/infrastructure/logging"
)

// tableWriter prints the repriced sheet to stdout instead of a file.
type tableWriter struct{}

func (tableWriter) Write(_ string, _ []string, records record.Collection) error {
	cli.PrintRepriceTable(records)
	return nil
}

func main() {
	// A .env file fills in anything the environment doesn't set
	_ = godotenv.Load()

	flags := cli.ParseRepriceFlags()

	cfg := config.LoadOrEnv(flags.ConfigPath)
	if flags.Verbose {
		cfg.Logging.Level = "debug"
	}
	logger := logging.NewLoggerWithSystem(cfg.Logging, "reprice")

	loader := feeds.NewLoader(nil, logger)

	// An empty -output switches from CSV on disk to a stdout table.
	var writer reprice.Writer
	if flags.Output == "" {
		writer = tableWriter{}
	}
	repricer := reprice.NewRepricer(loader, writer, logger)

	opts := flags.ToOptions(cfg)
	cli.PrintHeader("gamestop-prices", flags.DryRun)

	result, err := repricer.Run(context.Background(), opts)
	if err != nil {
		logger.Error("Repricing failed", "error", err)
		os.Exit(1)
	}

	cli.PrintRepriceSummary(result, flags.DryRun)
}
