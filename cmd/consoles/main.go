package main

import (
	"context"
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

	flags := cli.ParseConsolesFlags()

	cfg := config.LoadOrEnv(flags.ConfigPath)
	if flags.Verbose {
		cfg.Logging.Level = "debug"
	}
	logger := logging.NewLoggerWithSystem(cfg.Logging, "consoles")

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

	names, err := orchestrator.Consoles(context.Background(), flags.ToOptions(cfg))
	if err != nil {
		logger.Error("Failed to list consoles", "error", err)
		os.Exit(1)
	}

	cli.PrintConsoles(names)
}
