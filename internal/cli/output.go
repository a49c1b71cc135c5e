package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/scj643/pricing-csv/internal/application/reconcile"
	"github.com/scj643/pricing-csv/internal/application/reprice"
	"github.com/scj643/pricing-csv/internal/domain/record"
)

// PrintHeader prints the tool header
func PrintHeader(tool string, dryRun bool) {
	mode := "PRODUCTION"
	if dryRun {
		mode = "DRY-RUN"
	}
	fmt.Printf("pricing-csv: %s (%s mode)\n", tool, mode)
}

// PrintMatchConfiguration prints what a match run will reconcile
func PrintMatchConfiguration(opts reconcile.Options) {
	fmt.Printf("Console: %s | Inventory: %s | Price guide: %s\n\n",
		opts.Category,
		opts.InventorySource,
		opts.PriceGuideSource)
}

// PrintMatchSummary prints the match result summary
func PrintMatchSummary(result *reconcile.Result, dryRun bool) {
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Summary: Inventory=%d Guide=%d Matched=%d Unmatched=%d (%s)\n",
		result.InventoryRows,
		result.ReferenceRows,
		result.Matched,
		result.Unmatched,
		result.Duration.Round(time.Millisecond))

	if dryRun {
		fmt.Println("\nDry run, no files written.")
		return
	}
	fmt.Printf("\nWrote %s and %s.\n", result.WithIDsPath, result.WithoutIDsPath)
}

// PrintConsoles prints one console name per line, ready for -console
func PrintConsoles(names []string) {
	if len(names) == 0 {
		fmt.Println("No consoles found in either feed.")
		return
	}
	for _, name := range names {
		fmt.Println(name)
	}
}

// PrintRepriceTable prints the repriced sheet to stdout, for runs that
// don't name an output file.
func PrintRepriceTable(records record.Collection) {
	width := len("Product")
	for _, rec := range records {
		if n := len(rec[record.ColumnProductName]); n > width {
			width = n
		}
	}
	fmt.Printf("%-*s  %14s  %14s  %10s\n", width, "Product", "GameStop", "Trade", "New")
	for _, rec := range records {
		fmt.Printf("%-*s  %14s  %14s  %10s\n",
			width,
			rec[record.ColumnProductName],
			rec[record.ColumnGamestopPrice],
			rec[record.ColumnGamestopTradePrice],
			rec[record.ColumnNewPrice])
	}
}

// PrintRepriceSummary prints the reprice result summary
func PrintRepriceSummary(result *reprice.Result, dryRun bool) {
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Summary: Rows=%d Adjusted=%d Skipped=%d (%s)\n",
		result.Rows,
		result.Adjusted,
		result.Skipped,
		result.Duration.Round(time.Millisecond))

	if dryRun {
		fmt.Println("\nDry run, no file written.")
		return
	}
	if result.OutputPath != "" {
		fmt.Printf("\nWrote %s.\n", result.OutputPath)
	}
}
