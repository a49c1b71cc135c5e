package cli

import (
	"flag"

	"github.com/scj643/pricing-csv/internal/adapters/feeds"
	"github.com/scj643/pricing-csv/internal/application/reconcile"
	"github.com/scj643/pricing-csv/internal/application/reprice"
	"github.com/scj643/pricing-csv/internal/infrastructure/config"
)

// MatchFlags are the flags for the match command
type MatchFlags struct {
	ConfigPath   string
	Console      string
	Inventory    string
	PriceGuide   string
	OutMatched   string
	OutUnmatched string
	DryRun       bool
	Verbose      bool
}

// ParseMatchFlags parses match command flags from the command line
func ParseMatchFlags() MatchFlags {
	var flags MatchFlags
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "Path to config file")
	flag.StringVar(&flags.Console, "console", "", "Console to reconcile, e.g. NES (required)")
	flag.StringVar(&flags.Inventory, "inventory", "", "Inventory export path (overrides config)")
	flag.StringVar(&flags.PriceGuide, "priceguide", "", "Price guide CSV path (overrides config)")
	flag.StringVar(&flags.OutMatched, "out-matched", "", "Output path for rows with ids (overrides config)")
	flag.StringVar(&flags.OutUnmatched, "out-unmatched", "", "Output path for rows without ids (overrides config)")
	flag.BoolVar(&flags.DryRun, "dry-run", false, "Run without writing output files")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Verbose output")
	flag.Parse()
	return flags
}

// ToOptions combines flags and config into reconcile options
func (f MatchFlags) ToOptions(cfg *config.Config) reconcile.Options {
	return reconcile.Options{
		Category:         f.Console,
		InventorySource:  inventorySource(f.Inventory, cfg),
		PriceGuideSource: priceGuideSource(f.PriceGuide, cfg),
		WithIDsPath:      f.OutMatched,
		WithoutIDsPath:   f.OutUnmatched,
		DryRun:           f.DryRun,
	}
}

// ConsolesFlags are the flags for the consoles command
type ConsolesFlags struct {
	ConfigPath string
	Inventory  string
	PriceGuide string
	Verbose    bool
}

// ParseConsolesFlags parses consoles command flags from the command line
func ParseConsolesFlags() ConsolesFlags {
	var flags ConsolesFlags
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "Path to config file")
	flag.StringVar(&flags.Inventory, "inventory", "", "Inventory export path (overrides config)")
	flag.StringVar(&flags.PriceGuide, "priceguide", "", "Price guide CSV path (overrides config)")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Verbose output")
	flag.Parse()
	return flags
}

// ToOptions combines flags and config into reconcile options
func (f ConsolesFlags) ToOptions(cfg *config.Config) reconcile.Options {
	return reconcile.Options{
		InventorySource:  inventorySource(f.Inventory, cfg),
		PriceGuideSource: priceGuideSource(f.PriceGuide, cfg),
	}
}

// RepriceFlags are the flags for the gamestop-prices command
type RepriceFlags struct {
	ConfigPath string
	Input      string
	Output     string
	DryRun     bool
	Verbose    bool
}

// ParseRepriceFlags parses gamestop-prices command flags from the command line
func ParseRepriceFlags() RepriceFlags {
	var flags RepriceFlags
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "Path to config file")
	flag.StringVar(&flags.Input, "input", "", "Competitor price sheet (overrides config)")
	flag.StringVar(&flags.Output, "output", "gamestop_repriced.csv", "Output path for the repriced sheet")
	flag.BoolVar(&flags.DryRun, "dry-run", false, "Run without writing the output file")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Verbose output")
	flag.Parse()
	return flags
}

// ToOptions combines flags and config into reprice options
func (f RepriceFlags) ToOptions(cfg *config.Config) reprice.Options {
	input := f.Input
	if input == "" {
		input = cfg.Gamestop.File
	}
	return reprice.Options{
		Source:     feeds.FromFile(input),
		OutputPath: f.Output,
		DryRun:     f.DryRun,
	}
}

// inventorySource resolves where the inventory export comes from
func inventorySource(override string, cfg *config.Config) feeds.Source {
	if override != "" {
		return feeds.FromFile(override)
	}
	return feeds.FromFile(cfg.Inventory.File)
}

// priceGuideSource resolves where the price guide comes from. A local
// file wins over the feed URL.
func priceGuideSource(override string, cfg *config.Config) feeds.Source {
	if override != "" {
		return feeds.FromFile(override)
	}
	if cfg.PriceGuide.File != "" {
		return feeds.FromFile(cfg.PriceGuide.File)
	}
	return feeds.FromURL(cfg.PriceGuide.URL)
}
