package business

import (
	"goshopops_api/internal/supplier/models"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how a raw suggested price is snapped to a price
// point. An unrecognized mode degrades to plain 2-decimal rounding.
type RoundingMode string

const (
	RoundDownTo90  RoundingMode = "down_to_90"
	RoundDownTo95  RoundingMode = "down_to_95"
	RoundNearest10 RoundingMode = "nearest_10_cents"
	RoundUpTo05    RoundingMode = "up_to_05"
	RoundNone      RoundingMode = "none"
)

var (
	ninety     = decimal.RequireFromString("0.90")
	ninetyFive = decimal.RequireFromString("0.95")
	twenty     = decimal.NewFromInt(20)
	one        = decimal.NewFromInt(1)
)

// SuggestedPrice snaps cost under the given mode. A nil cost propagates
// as nil; absence is not an error. Results always carry two decimals.
func SuggestedPrice(cost *decimal.Decimal, mode RoundingMode) *decimal.Decimal {
	if cost == nil {
		return nil
	}

	var result decimal.Decimal
	switch mode {
	case RoundDownTo90:
		result = snapDown(*cost, ninety)
	case RoundDownTo95:
		result = snapDown(*cost, ninetyFive)
	case RoundNearest10:
		result = cost.Round(1)
	case RoundUpTo05:
		result = cost.Mul(twenty).Ceil().Div(twenty)
	default:
		result = *cost
	}

	result = result.Round(2)
	return &result
}

// snapDown lands on the nearest `.mark` price point at or below the
// naive ceiling. A positive cost never prices below the mark itself.
func snapDown(cost, mark decimal.Decimal) decimal.Decimal {
	whole := cost.Floor()
	frac := cost.Sub(whole)

	switch {
	case frac.GreaterThanOrEqual(mark):
		return whole.Add(mark)
	case whole.GreaterThan(decimal.Zero):
		return whole.Sub(one).Add(mark)
	default:
		return mark
	}
}

// PricingEngine derives suggested retail prices from supplier costs.
// FX conversion and markup are explicit pre-steps; the rounding policy
// is only ever applied to the marked-up amount.
type PricingEngine struct {
	fxRate decimal.Decimal
	markup decimal.Decimal
	mode   RoundingMode
}

func NewPricingEngine(fxRate, markup decimal.Decimal, mode RoundingMode) *PricingEngine {
	return &PricingEngine{fxRate: fxRate, markup: markup, mode: mode}
}

// ConvertCost brings a source-currency cost into shop currency.
func (e *PricingEngine) ConvertCost(cost *decimal.Decimal) *decimal.Decimal {
	if cost == nil {
		return nil
	}
	converted := cost.Mul(e.fxRate).Round(2)
	return &converted
}

// PriceRow augments one order line with its priced fields. The line's
// unit price is treated as the supplier cost in source currency.
func (e *PricingEngine) PriceRow(line models.OrderLine, productType string, weightGrams float64) models.PricedRow {
	row := models.PricedRow{
		OrderLine:   line,
		ProductType: productType,
		WeightGrams: weightGrams,
	}

	row.CostAmount = e.ConvertCost(line.UnitPrice)
	if row.CostAmount != nil {
		raw := row.CostAmount.Mul(e.markup).Round(2)
		row.RawPrice = &raw
	}
	row.SuggestedPrice = SuggestedPrice(row.RawPrice, e.mode)
	return row
}

// PriceRows prices every line with the same product type and weight.
func (e *PricingEngine) PriceRows(lines []models.OrderLine, productType string, weightGrams float64) []models.PricedRow {
	rows := make([]models.PricedRow, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, e.PriceRow(line, productType, weightGrams))
	}
	return rows
}
