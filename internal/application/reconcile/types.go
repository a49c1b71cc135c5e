package reconcile

import (
	"log/slog"
	"time"

	"github.com/scj643/pricing-csv/internal/adapters/feeds"
	"github.com/scj643/pricing-csv/internal/domain/matcher"
	"github.com/scj643/pricing-csv/internal/domain/record"
	"github.com/scj643/pricing-csv/internal/fileio"
	"github.com/scj643/pricing-csv/internal/infrastructure/config"
)

// Options holds the parameters for a single reconciliation run
type Options struct {
	Category         string // department / console to reconcile, e.g. "NES"
	InventorySource  feeds.Source
	PriceGuideSource feeds.Source
	WithIDsPath      string // overrides config when set
	WithoutIDsPath   string // overrides config when set
	DryRun           bool
}

// Result holds reconciliation results
type Result struct {
	RunID          string
	Category       string
	InventoryRows  int // rows in the category after partitioning
	ReferenceRows  int
	Matched        int
	Unmatched      int
	WithIDsPath    string
	WithoutIDsPath string
	Duration       time.Duration
}

// ResultWriter persists one output split. The default implementation
// writes CSV files, tests swap in a recorder.
type ResultWriter interface {
	Write(path string, columns []string, records record.Collection) error
}

// Orchestrator runs the reconciliation process
type Orchestrator struct {
	config  *config.Config
	loader  *feeds.Loader
	matcher *matcher.Matcher
	writer  ResultWriter
	logger  *slog.Logger
}

// NewOrchestrator creates a reconciliation orchestrator. A nil loader
// gets a default HTTP client, a nil writer falls back to CSV files on
// disk, a nil logger to slog.Default.
func NewOrchestrator(
	cfg *config.Config,
	loader *feeds.Loader,
	writer ResultWriter,
	logger *slog.Logger,
) (*Orchestrator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if loader == nil {
		loader = feeds.NewLoader(nil, logger)
	}
	if writer == nil {
		writer = csvWriter{}
	}

	strip, err := cfg.StripSet()
	if err != nil {
		return nil, err
	}

	matcherConfig := matcher.Config{
		InventoryCategoryField: cfg.Inventory.CategoryField,
		InventoryNameField:     cfg.Inventory.NameField,
		ReferenceCategoryField: cfg.PriceGuide.CategoryField,
		ReferenceNameField:     cfg.PriceGuide.NameField,
		ReferenceIDField:       cfg.PriceGuide.IDField,
		Strip:                  strip,
	}

	return &Orchestrator{
		config:  cfg,
		loader:  loader,
		matcher: matcher.New(matcherConfig),
		writer:  writer,
		logger:  logger,
	}, nil
}

// csvWriter is the default ResultWriter
type csvWriter struct{}

func (csvWriter) Write(path string, columns []string, records record.Collection) error {
	return fileio.WriteFile(path, columns, records.Rows())
}
