// Package reconcile coordinates one reconciliation pass: load the
// inventory and price guide feeds, cut both down to a category, attach
// price guide ids to inventory rows, and write the matched and
// unmatched splits as CSV.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Run executes the reconciliation process for one category
func (o *Orchestrator) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Category == "" {
		return nil, errors.New("category is required")
	}

	start := time.Now()
	result := &Result{
		RunID:    uuid.NewString(),
		Category: opts.Category,
	}
	logger := o.logger.With("run_id", result.RunID)

	logger.Debug("Starting reconciliation",
		"category", opts.Category,
		"dry_run", opts.DryRun,
	)

	// 1. Load both feeds
	inventory, err := o.loader.LoadInventory(ctx, opts.InventorySource)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	reference, err := o.loader.LoadPriceGuide(ctx, opts.PriceGuideSource)
	if err != nil {
		return nil, fmt.Errorf("failed to load price guide: %w", err)
	}

	logger.Debug("Loaded feeds",
		"inventory_rows", len(inventory),
		"reference_rows", len(reference),
	)

	// 2. Cut both feeds down to the requested category
	inventory, reference = o.matcher.Partition(inventory, reference, opts.Category)
	result.InventoryRows = len(inventory)
	result.ReferenceRows = len(reference)

	if len(inventory) == 0 {
		logger.Warn("No inventory rows in category", "category", opts.Category)
	}
	if len(reference) == 0 {
		logger.Warn("No price guide rows in category", "category", opts.Category)
	}

	// 3. Attach ids
	matched, err := o.matcher.Match(inventory, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to match: %w", err)
	}
	result.Matched = len(matched.WithID)
	result.Unmatched = len(matched.WithoutID)

	logger.Debug("Matched inventory",
		"matched", result.Matched,
		"unmatched", result.Unmatched,
	)
	for _, pair := range matched.Pairs {
		logger.Debug("Matched pair",
			"name", pair.Inventory[o.config.Inventory.NameField],
			"id", pair.Reference[o.config.PriceGuide.IDField],
		)
	}

	// 4. Write the two splits
	result.WithIDsPath = opts.WithIDsPath
	if result.WithIDsPath == "" {
		result.WithIDsPath = o.config.Output.WithIDs
	}
	result.WithoutIDsPath = opts.WithoutIDsPath
	if result.WithoutIDsPath == "" {
		result.WithoutIDsPath = o.config.Output.WithoutIDs
	}

	columns := o.config.Output.Columns
	if opts.DryRun {
		logger.Info("[DRY RUN] Would write splits",
			"with_ids", result.WithIDsPath,
			"without_ids", result.WithoutIDsPath,
		)
	} else {
		if err := o.writer.Write(result.WithIDsPath, columns, matched.WithID); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", result.WithIDsPath, err)
		}
		if err := o.writer.Write(result.WithoutIDsPath, columns, matched.WithoutID); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", result.WithoutIDsPath, err)
		}
		logger.Debug("Wrote splits",
			"with_ids", result.WithIDsPath,
			"without_ids", result.WithoutIDsPath,
		)
	}

	result.Duration = time.Since(start)
	return result, nil
}

// Consoles lists the distinct category names seen in the price guide
// and inventory feeds, in first-seen order with guide names first.
// Column validation is skipped here so a trimmed-down feed still
// lists, and an unreadable inventory feed only costs its names.
func (o *Orchestrator) Consoles(ctx context.Context, opts Options) ([]string, error) {
	reference, err := o.loader.Load(ctx, opts.PriceGuideSource)
	if err != nil {
		return nil, fmt.Errorf("failed to load price guide: %w", err)
	}

	inventory, err := o.loader.Load(ctx, opts.InventorySource)
	if err != nil {
		o.logger.Warn("Skipping inventory names", "error", err)
		inventory = nil
	}

	names := reference.Distinct(o.config.PriceGuide.CategoryField)
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[strings.ToLower(name)] = true
	}
	for _, name := range inventory.Distinct(o.config.Inventory.CategoryField) {
		if !seen[strings.ToLower(name)] {
			seen[strings.ToLower(name)] = true
			names = append(names, name)
		}
	}
	return names, nil
}
