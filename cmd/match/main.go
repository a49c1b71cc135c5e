package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/scj643/pricing-csv/internal/adapters/feeds"
	"github.com/scj643/pricing-csv/internal/application/reconcile"
	"github.com/scj643/pricing-csv/internal/cli"
	"github.com/scj643/pricing-csv/internal/infrastructure/config"
	"github.com/scj643/pricing-csv/internal/infrastructure/logging"
)

func main() {
	// A .env file fills in anything the environment doesn't set
	_ = godotenv.Load()

	flags := cli.ParseMatchFlags()
	if flags.Console == "" {
		fmt.Fprintln(os.Stderr, "-console is required (run consoles to list valid names)")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.LoadOrEnv(flags.ConfigPath)
	if flags.Verbose {
		cfg.Logging.Level = "debug"
	}
	logger := logging.NewLoggerWithSystem(cfg.Logging, "match")

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second}
	loader := feeds.NewLoader(client, logger)

	orchestrator, err := reconcile.NewOrchestrator(cfg, loader, nil, logger)
	if err != nil {
		logger.Error("Failed to create orchestrator", "error", err)
		os.Exit(1)
	}

	opts := flags.ToOptions(cfg)
	cli.PrintHeader("match", flags.DryRun)
	cli.PrintMatchConfiguration(opts)

	result, err := orchestrator.Run(context.Background(), opts)
	if err != nil {
		logger.Error("Reconciliation failed", "error", err)
		os.Exit(1)
	}

	cli.PrintMatchSummary(result, flags.DryRun)
}
