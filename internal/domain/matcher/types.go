package matcher

import (
	"github.com/scj643/pricing-csv/internal/domain/normalizer"
	"github.com/scj643/pricing-csv/internal/domain/record"
)

// Config holds matcher configuration: which columns carry the category,
// the free-text name, and the reference id, plus the normalization strip
// set applied to both names.
type Config struct {
	InventoryCategoryField string
	InventoryNameField     string
	ReferenceCategoryField string
	ReferenceNameField     string
	ReferenceIDField       string
	Strip                  normalizer.StripSet
}

// DefaultConfig returns the production field names and the hyphen-folding
// strip set.
func DefaultConfig() Config {
	strip, _ := normalizer.ForDialect(normalizer.DialectStripHyphens)
	return Config{
		InventoryCategoryField: record.ColumnDept,
		InventoryNameField:     record.ColumnDesc,
		ReferenceCategoryField: record.ColumnConsole,
		ReferenceNameField:     record.ColumnProductName,
		ReferenceIDField:       record.ColumnID,
		Strip:                  strip,
	}
}

// Pair is one audit entry: an inventory record and the reference record
// whose id it received.
type Pair struct {
	Inventory record.Record
	Reference record.Record
}

// Result is the outcome of matching one partition pair. WithID and
// WithoutID cover the inventory partition exactly, each preserving the
// partition's relative order.
type Result struct {
	WithID    record.Collection
	WithoutID record.Collection
	Pairs     []Pair
}
