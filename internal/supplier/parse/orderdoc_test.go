package parse

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `SUPPLIER ORDER #2024-117
---- ITEMS ----
1 (8800123456789) Secret Muse - Velvet Lip Tint 4 g pcs 3 12,50 37,50 3,75
2 (8800123456790) Hydra Cream 50 ml pcs 2 20.00 40.00 4.00
3 (SAMPLE) Tester Pouch pcs 1 0 0 0
4 (8800123456791) Mono – Cushion Refill ea 1 18.90 18.90 1.89
5 (8800123456792)   Eau   de   Parfum 30 ml box 1 55.00 55.00 5.50
6 (8800123456793) Clay Mask set 4 9.90 39.60 3.96
Total 11 items`

func TestOrderDocumentParserParse(t *testing.T) {
	p := NewOrderDocumentParser("", "House Brand", false)
	lines, skipped := p.Parse(sampleDocument)

	// five product lines survive: the header, ruler and total are
	// skipped, and so is the sample line.
	require.Len(t, lines, 5)
	assert.Equal(t, 3, skipped)

	first := lines[0]
	assert.Equal(t, "8800123456789", first.Code)
	assert.Equal(t, "Secret Muse", first.Vendor)
	assert.Equal(t, "Velvet Lip Tint", first.Title)
	assert.Equal(t, "4 g", first.Size)
	assert.Equal(t, "pcs", first.Unit)
	assert.Equal(t, 3, first.Quantity)
	require.NotNil(t, first.UnitPrice)
	assert.True(t, first.UnitPrice.Equal(decimal.RequireFromString("12.50")))
	require.NotNil(t, first.LineValue)
	assert.True(t, first.LineValue.Equal(decimal.RequireFromString("37.50")))
	require.NotNil(t, first.TaxAmount)
	assert.True(t, first.TaxAmount.Equal(decimal.RequireFromString("3.75")))

	// document order is preserved
	codes := make([]string, 0, len(lines))
	for _, line := range lines {
		codes = append(codes, line.Code)
	}
	assert.Equal(t, []string{
		"8800123456789", "8800123456790", "8800123456791",
		"8800123456792", "8800123456793",
	}, codes)
}

func TestOrderDocumentParserNormalization(t *testing.T) {
	p := NewOrderDocumentParser("", "House Brand", false)
	lines, _ := p.Parse(sampleDocument)
	require.Len(t, lines, 5)

	// the en dash on line 4 is treated as a plain vendor separator
	assert.Equal(t, "Mono", lines[2].Vendor)
	assert.Equal(t, "Cushion Refill", lines[2].Title)

	// runs of whitespace on line 5 collapse before matching
	assert.Equal(t, "8800123456792", lines[3].Code)
	assert.Equal(t, "Eau de Parfum", lines[3].Title)
	assert.Equal(t, "30 ml", lines[3].Size)
}

func TestOrderDocumentParserSamples(t *testing.T) {
	without, skippedWithout := NewOrderDocumentParser("", "House Brand", false).Parse(sampleDocument)
	with, skippedWith := NewOrderDocumentParser("", "House Brand", true).Parse(sampleDocument)

	require.Len(t, with, len(without)+1)
	// a filtered sample line is not a malformed line
	assert.Equal(t, skippedWith, skippedWithout)

	sampleCount := 0
	for _, line := range with {
		if line.Code == DefaultSampleToken {
			sampleCount++
			assert.False(t, line.HasCode(DefaultSampleToken))
		}
	}
	assert.Equal(t, 1, sampleCount)
}

func TestOrderDocumentParserCustomSampleToken(t *testing.T) {
	doc := "1 (GWP) Mini Pouch pcs 1 0 0 0"
	lines, _ := NewOrderDocumentParser("GWP", "House Brand", true).Parse(doc)
	require.Len(t, lines, 1)
	assert.Equal(t, "GWP", lines[0].Code)

	lines, _ = NewOrderDocumentParser("GWP", "House Brand", false).Parse(doc)
	assert.Empty(t, lines)
}

func TestOrderDocumentParserSkipCount(t *testing.T) {
	p := NewOrderDocumentParser("", "House Brand", false)

	// header, ruler and total; blank lines do not count
	_, skipped := p.Parse(sampleDocument + "\n\n")
	assert.Equal(t, 3, skipped)

	_, skipped = p.Parse("")
	assert.Equal(t, 0, skipped)
}

func TestOrderDocumentParserNothingParses(t *testing.T) {
	p := NewOrderDocumentParser("", "House Brand", false)
	doc := strings.Join([]string{"ORDER SUMMARY", "nothing to see"}, "\n")
	lines, skipped := p.Parse(doc)
	assert.Empty(t, lines)
	assert.Equal(t, 2, skipped)
}

func TestOrderDocumentParserMalformedPrice(t *testing.T) {
	// quantity and prices must be numeric for the line to match at all
	p := NewOrderDocumentParser("", "House Brand", false)
	lines, skipped := p.Parse("1 (8800123456789) Toner pcs one 1 1 1")
	assert.Empty(t, lines)
	assert.Equal(t, 1, skipped)
}
