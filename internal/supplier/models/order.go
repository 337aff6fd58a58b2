package models

import "github.com/shopspring/decimal"

// OrderLine is one physical product line of a supplier document in
// canonical form. Monetary fields are nil when the source token could
// not be converted; Code is empty when no barcode could be extracted.
type OrderLine struct {
	Code      string
	RawName   string
	Vendor    string
	Title     string
	Size      string
	Unit      string
	Quantity  int
	UnitPrice *decimal.Decimal
	LineValue *decimal.Decimal
	TaxAmount *decimal.Decimal
}

// HasCode reports whether the line carries a usable identifying code
// (extraction succeeded and the line is not a sample placeholder).
func (l OrderLine) HasCode(sampleToken string) bool {
	return l.Code != "" && l.Code != sampleToken
}

// DecomposedName is the structured view of a free-text product name.
type DecomposedName struct {
	Vendor string
	Title  string
	Size   string
}

// PricedRow is an order line augmented with the cost converted to shop
// currency and the suggested retail price derived from it.
type PricedRow struct {
	OrderLine
	ProductType    string
	WeightGrams    float64
	CostAmount     *decimal.Decimal
	RawPrice       *decimal.Decimal
	SuggestedPrice *decimal.Decimal
}
