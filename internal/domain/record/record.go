// Package record models rows of the tabular feeds: the retailer's own
// inventory, the price-guide export, and the competitor price sheet.
//
// A Record keeps every value as a string, exactly as parsed. Typed views
// (InventoryItem, PriceGuideItem, CompetitorItem) layer named accessors on
// top; nothing is validated at construction time, so a schema problem only
// surfaces when an accessor asks for a column the feed never had.
package record

import "fmt"

// Column names of the inventory feed.
const (
	ColumnSKU    = "sku"
	ColumnDesc   = "desc"
	ColumnVendor = "vend"
	ColumnDept   = "dept"
	ColumnCash   = "cash"
	ColumnTrade  = "trade"
	ColumnPrice  = "price"
	ColumnTax    = "tax"
)

// Column names of the price-guide feed.
const (
	ColumnConsole       = "console-name"
	ColumnProductName   = "product-name"
	ColumnLoosePrice    = "loose-price"
	ColumnCompletePrice = "cib-price"
	ColumnID            = "id"
)

// Column names of the competitor feed, plus the column populated by the
// price adjustment step.
const (
	ColumnGamestopPrice      = "gamestop-price"
	ColumnGamestopTradePrice = "gamestop-trade-price"
	ColumnNewPrice           = "new-price"
)

// FieldError reports an accessor that referenced a column absent from the
// backing row.
type FieldError struct {
	Column string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Column)
}

// Record is one row of a feed, keyed by column name. Records are mutable:
// matching adds an id, price adjustment adds a new-price.
type Record map[string]string

// Field returns the value of the named column, or a FieldError when the
// column is absent. An empty value is not an error.
func (r Record) Field(name string) (string, error) {
	v, ok := r[name]
	if !ok {
		return "", &FieldError{Column: name}
	}
	return v, nil
}

// Has reports whether the named column exists on this record.
func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Set adds or replaces a column value.
func (r Record) Set(name, value string) {
	r[name] = value
}

func (r Record) money(name string) (Money, error) {
	raw, err := r.Field(name)
	if err != nil {
		return Money{}, err
	}
	return ParseMoney(raw), nil
}
