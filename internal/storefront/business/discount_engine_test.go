package business

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountEngineExtractDiscount(t *testing.T) {
	e := NewDiscountEngine("")

	percent, ok := e.ExtractDiscount("new, soldes30, vegan")
	require.True(t, ok)
	assert.Equal(t, 30, percent)

	percent, ok = e.ExtractDiscount("Soldes15")
	require.True(t, ok)
	assert.Equal(t, 15, percent)

	_, ok = e.ExtractDiscount("new, vegan")
	assert.False(t, ok)

	_, ok = e.ExtractDiscount("soldesXL")
	assert.False(t, ok)

	_, ok = e.ExtractDiscount("")
	assert.False(t, ok)
}

func TestDiscountEngineDiscountedPrice(t *testing.T) {
	e := NewDiscountEngine("")

	// 30% off 29.90 is 20.93, snapped up to the next 0.05 point
	got := e.DiscountedPrice(decimal.RequireFromString("29.90"), 30)
	assert.True(t, got.Equal(decimal.RequireFromString("20.95")), "got %s", got)

	// an exact point is left alone
	got = e.DiscountedPrice(decimal.RequireFromString("20.00"), 50)
	assert.True(t, got.Equal(decimal.RequireFromString("10.00")), "got %s", got)
}

func TestDiscountEngineNeedsUpdate(t *testing.T) {
	e := NewDiscountEngine("")
	compareAt := decimal.RequireFromString("29.90")
	discounted := decimal.RequireFromString("20.95")

	// never discounted before
	assert.True(t, e.NeedsUpdate(decimal.RequireFromString("29.90"), nil, discounted))

	// current price still equals compare-at, so the sale never ran
	assert.True(t, e.NeedsUpdate(decimal.RequireFromString("29.90"), &compareAt, discounted))

	// already on the target price
	assert.False(t, e.NeedsUpdate(decimal.RequireFromString("20.95"), &compareAt, discounted))

	// drifted off the target price
	assert.True(t, e.NeedsUpdate(decimal.RequireFromString("22.00"), &compareAt, discounted))
}

func TestDiscountEngineStripTag(t *testing.T) {
	e := NewDiscountEngine("")

	assert.Equal(t, "new, vegan", e.StripTag("new, soldes30, vegan", 30))
	assert.Equal(t, "new, soldes30", e.StripTag("new, soldes30", 15))
	assert.Equal(t, "", e.StripTag("soldes30", 30))
}
