package record

// InventoryItem is a typed view over one of the retailer's inventory rows.
// The view shares the underlying record; Set on either is visible to both.
type InventoryItem struct {
	Record
}

func (i InventoryItem) SKU() (string, error)         { return i.Field(ColumnSKU) }
func (i InventoryItem) Department() (string, error)  { return i.Field(ColumnDept) }
func (i InventoryItem) Description() (string, error) { return i.Field(ColumnDesc) }
func (i InventoryItem) CashPrice() (Money, error)    { return i.money(ColumnCash) }
func (i InventoryItem) TradePrice() (Money, error)   { return i.money(ColumnTrade) }
func (i InventoryItem) ListPrice() (Money, error)    { return i.money(ColumnPrice) }

// PriceGuideItem is a typed view over a price-guide row.
type PriceGuideItem struct {
	Record
}

func (p PriceGuideItem) Console() (string, error)       { return p.Field(ColumnConsole) }
func (p PriceGuideItem) ProductName() (string, error)   { return p.Field(ColumnProductName) }
func (p PriceGuideItem) ExternalID() (string, error)    { return p.Field(ColumnID) }
func (p PriceGuideItem) LoosePrice() (Money, error)     { return p.money(ColumnLoosePrice) }
func (p PriceGuideItem) CompletePrice() (Money, error)  { return p.money(ColumnCompletePrice) }

// CompetitorItem is a typed view over a competitor price-sheet row.
type CompetitorItem struct {
	Record
}

func (c CompetitorItem) ProductName() (string, error)        { return c.Field(ColumnProductName) }
func (c CompetitorItem) GamestopPrice() (Money, error)       { return c.money(ColumnGamestopPrice) }
func (c CompetitorItem) GamestopTradePrice() (Money, error)  { return c.money(ColumnGamestopTradePrice) }
