// Package feeds materializes the three external datasets the pipeline
// consumes: the retailer's inventory export, the price-guide feed, and the
// competitor price sheet.
//
// Each dataset can come from rows already parsed in memory, a local file,
// or a URL serving a CSV body. One loader handles all three source kinds;
// the per-dataset constructors add the dataset's required-column check.
package feeds

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/scj643/pricing-csv/internal/domain/record"
	"github.com/scj643/pricing-csv/internal/fileio"
)

// SourceKind selects how a Source is materialized.
type SourceKind int

const (
	// SourceRows wraps rows that were already parsed elsewhere.
	SourceRows SourceKind = iota
	// SourceFile reads a local tabular file.
	SourceFile
	// SourceURL fetches a CSV body with a single GET.
	SourceURL
)

// Source names one place a dataset can come from.
type Source struct {
	Kind SourceKind
	Path string // file path or URL
	Rows []map[string]string
}

// FromRows builds a Source around already-parsed rows.
func FromRows(rows []map[string]string) Source {
	return Source{Kind: SourceRows, Rows: rows}
}

// FromFile builds a Source reading a local file.
func FromFile(path string) Source {
	return Source{Kind: SourceFile, Path: path}
}

// FromURL builds a Source fetching a remote CSV.
func FromURL(url string) Source {
	return Source{Kind: SourceURL, Path: url}
}

// String describes the source for logs and console output.
func (s Source) String() string {
	if s.Kind == SourceRows {
		return fmt.Sprintf("%d in-memory rows", len(s.Rows))
	}
	return s.Path
}

// Loader materializes record collections from sources.
type Loader struct {
	client *http.Client
	logger *slog.Logger
}

// NewLoader creates a loader. A nil client gets a 30 second timeout
// default; a nil logger falls back to slog.Default.
func NewLoader(client *http.Client, logger *slog.Logger) *Loader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		client: client,
		logger: logger.With("system", "feeds"),
	}
}

// Load materializes a source with no schema expectations attached.
func (l *Loader) Load(ctx context.Context, src Source) (record.Collection, error) {
	switch src.Kind {
	case SourceRows:
		return record.FromRows(src.Rows), nil
	case SourceFile:
		rows, err := fileio.ReadFile(src.Path)
		if err != nil {
			return nil, err
		}
		return record.FromRows(rows), nil
	case SourceURL:
		rows, err := l.fetch(ctx, src.Path)
		if err != nil {
			return nil, err
		}
		return record.FromRows(rows), nil
	default:
		return nil, fmt.Errorf("unknown source kind %d", src.Kind)
	}
}

// fetch GETs url and parses the body as CSV. One attempt, no retry; the
// caller owns that decision.
func (l *Loader) fetch(ctx context.Context, url string) ([]map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fileio.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned %s", fileio.ErrSourceUnavailable, url, resp.Status)
	}
	return fileio.ReadCSV(resp.Body)
}

// LoadInventory materializes the retailer's inventory and verifies the
// columns matching depends on.
func (l *Loader) LoadInventory(ctx context.Context, src Source) (record.Collection, error) {
	col, err := l.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	err = col.RequireColumns(record.ColumnSKU, record.ColumnDesc, record.ColumnDept,
		record.ColumnCash, record.ColumnTrade, record.ColumnPrice)
	if err != nil {
		return nil, fmt.Errorf("inventory feed: %w", err)
	}
	l.logger.Debug("loaded inventory", "rows", len(col))
	return col, nil
}

// LoadPriceGuide materializes the price-guide feed.
func (l *Loader) LoadPriceGuide(ctx context.Context, src Source) (record.Collection, error) {
	col, err := l.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	err = col.RequireColumns(record.ColumnConsole, record.ColumnProductName, record.ColumnID,
		record.ColumnLoosePrice, record.ColumnCompletePrice)
	if err != nil {
		return nil, fmt.Errorf("price guide feed: %w", err)
	}
	l.logger.Debug("loaded price guide", "rows", len(col))
	return col, nil
}

// LoadCompetitor materializes the competitor price sheet.
func (l *Loader) LoadCompetitor(ctx context.Context, src Source) (record.Collection, error) {
	col, err := l.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	err = col.RequireColumns(record.ColumnProductName, record.ColumnGamestopPrice,
		record.ColumnGamestopTradePrice)
	if err != nil {
		return nil, fmt.Errorf("competitor feed: %w", err)
	}
	l.logger.Debug("loaded competitor sheet", "rows", len(col))
	return col, nil
}
