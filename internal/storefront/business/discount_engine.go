package business

import (
	"strconv"
	"strings"

	supplier "goshopops_api/internal/supplier/business"

	"github.com/shopspring/decimal"
)

// DefaultTagPrefix marks products on sale: "soldes30" means 30% off
// the compare-at price.
const DefaultTagPrefix = "soldes"

var hundred = decimal.NewFromInt(100)
var cent = decimal.RequireFromString("0.01")

// DiscountEngine computes sale prices from product tags. Discounted
// prices are snapped up to the nearest 0.05 so the shelf price never
// undercuts the advertised percentage.
type DiscountEngine struct {
	tagPrefix string
}

func NewDiscountEngine(tagPrefix string) *DiscountEngine {
	if tagPrefix == "" {
		tagPrefix = DefaultTagPrefix
	}
	return &DiscountEngine{tagPrefix: tagPrefix}
}

// ExtractDiscount finds the sale percentage in a comma-separated tag
// list. False when no sale tag is present or its suffix is not a number.
func (e *DiscountEngine) ExtractDiscount(tags string) (int, bool) {
	for _, tag := range strings.Split(tags, ",") {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if !strings.HasPrefix(tag, e.tagPrefix) {
			continue
		}
		percent, err := strconv.Atoi(strings.TrimPrefix(tag, e.tagPrefix))
		if err != nil {
			return 0, false
		}
		return percent, true
	}
	return 0, false
}

// DiscountedPrice applies percent off compareAt and snaps upward to the
// nearest 0.05.
func (e *DiscountEngine) DiscountedPrice(compareAt decimal.Decimal, percent int) decimal.Decimal {
	factor := hundred.Sub(decimal.NewFromInt(int64(percent))).Div(hundred)
	raw := compareAt.Mul(factor)
	return *supplier.SuggestedPrice(&raw, supplier.RoundUpTo05)
}

// NeedsUpdate guards against rewriting a variant that is already on the
// target sale price. compareAt is nil when the variant has never been
// discounted.
func (e *DiscountEngine) NeedsUpdate(current decimal.Decimal, compareAt *decimal.Decimal, discounted decimal.Decimal) bool {
	if compareAt == nil {
		return true
	}
	if compareAt.Sub(current).Abs().LessThan(cent) {
		return true
	}
	return current.Sub(discounted).Abs().GreaterThan(cent)
}

// StripTag removes the sale tag for the given percentage, preserving
// the remaining tags and their order.
func (e *DiscountEngine) StripTag(tags string, percent int) string {
	saleTag := e.tagPrefix + strconv.Itoa(percent)
	var kept []string
	for _, tag := range strings.Split(tags, ",") {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" || strings.EqualFold(trimmed, saleTag) {
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, ", ")
}
