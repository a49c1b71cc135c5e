// Package reprice applies the store's discount ladder to a competitor
// price sheet, attaching a new-price column next to each row's current
// price. Rows whose price falls in a ladder gap or does not parse keep
// an empty new-price and are counted as skipped.
package reprice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scj643/pricing-csv/internal/adapters/feeds"
	"github.com/scj643/pricing-csv/internal/domain/pricing"
	"github.com/scj643/pricing-csv/internal/domain/record"
	"github.com/scj643/pricing-csv/internal/fileio"
)

// Options holds the parameters for a repricing run
type Options struct {
	Source     feeds.Source
	OutputPath string
	DryRun     bool
}

// Result holds repricing results
type Result struct {
	RunID      string
	Rows       int
	Adjusted   int
	Skipped    int // unparseable prices plus prices the ladder has no rung for
	OutputPath string
	Duration   time.Duration
}

// Writer persists the repriced sheet. The default implementation
// writes a CSV file, tests swap in a recorder.
type Writer interface {
	Write(path string, columns []string, records record.Collection) error
}

// Columns returns the output column order: the competitor sheet's own
// columns followed by the computed new-price.
func Columns() []string {
	return []string{
		record.ColumnProductName,
		record.ColumnGamestopPrice,
		record.ColumnGamestopTradePrice,
		record.ColumnNewPrice,
	}
}

// Repricer attaches adjusted prices to competitor price sheets
type Repricer struct {
	loader *feeds.Loader
	writer Writer
	logger *slog.Logger
}

// NewRepricer creates a repricer. A nil loader gets a default HTTP
// client, a nil writer falls back to a CSV file on disk, a nil logger
// to slog.Default.
func NewRepricer(loader *feeds.Loader, writer Writer, logger *slog.Logger) *Repricer {
	if logger == nil {
		logger = slog.Default()
	}
	if loader == nil {
		loader = feeds.NewLoader(nil, logger)
	}
	if writer == nil {
		writer = csvWriter{}
	}
	return &Repricer{
		loader: loader,
		writer: writer,
		logger: logger,
	}
}

// Run executes the repricing process
func (r *Repricer) Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	result := &Result{
		RunID:      uuid.NewString(),
		OutputPath: opts.OutputPath,
	}
	logger := r.logger.With("run_id", result.RunID)

	logger.Debug("Starting repricing", "dry_run", opts.DryRun)

	// 1. Load the competitor sheet
	sheet, err := r.loader.LoadCompetitor(ctx, opts.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to load competitor sheet: %w", err)
	}
	result.Rows = len(sheet)

	// 2. Attach an adjusted price to every row the ladder covers
	for _, rec := range sheet {
		item := record.CompetitorItem{Record: rec}

		price, err := item.GamestopPrice()
		if err != nil {
			return nil, fmt.Errorf("competitor sheet: %w", err)
		}
		if !price.Valid {
			name, _ := item.ProductName()
			logger.Warn("Unreadable price, leaving new-price empty", "product", name)
			result.Skipped++
			continue
		}

		adjusted, ok := pricing.Adjust(price.Value)
		if !ok {
			name, _ := item.ProductName()
			logger.Warn("Price falls in a ladder gap, leaving new-price empty",
				"product", name,
				"price", price.Value,
			)
			result.Skipped++
			continue
		}

		rec.Set(record.ColumnNewPrice, adjusted)
		result.Adjusted++
	}

	logger.Debug("Repriced sheet",
		"rows", result.Rows,
		"adjusted", result.Adjusted,
		"skipped", result.Skipped,
	)

	// 3. Write the sheet back out
	if opts.DryRun {
		logger.Info("[DRY RUN] Would write repriced sheet", "path", opts.OutputPath)
	} else {
		if err := r.writer.Write(opts.OutputPath, Columns(), sheet); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", opts.OutputPath, err)
		}
		logger.Debug("Wrote repriced sheet", "path", opts.OutputPath)
	}

	result.Duration = time.Since(start)
	return result, nil
}

// csvWriter is the default Writer
type csvWriter struct{}

func (csvWriter) Write(path string, columns []string, records record.Collection) error {
	return fileio.WriteFile(path, columns, records.Rows())
}
