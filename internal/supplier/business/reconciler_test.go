package business

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goshopops_api/internal/supplier/models"
)

func TestReconcile(t *testing.T) {
	catalog := []models.CatalogRecord{
		{ID: 1, Title: "Velvet Lip Tint", VariantBarcode: "8800123456789"},
		{ID: 2, Title: "Hydra Cream", VariantBarcode: "8800123456790"},
	}
	lines := []models.OrderLine{
		{Code: "8800123456789", Title: "Velvet Lip Tint"},
		{Code: "8800123456791", Title: "Clay Mask"},
	}
	expected := []string{"8800123456789", "8800123456790"}

	result := Reconcile(lines, catalog, nil, expected)

	require.Len(t, result.Matched, 1)
	assert.Equal(t, int64(1), result.Matched[0].ID)

	require.Len(t, result.Unmatched, 1)
	assert.Equal(t, "8800123456791", result.Unmatched[0].Code)

	assert.Equal(t, []string{"8800123456790"}, result.MissingFromOrder)
}

func TestReconcileKnownCodes(t *testing.T) {
	lines := []models.OrderLine{
		{Code: "8800123456791", Title: "Clay Mask"},
	}
	known := map[string]struct{}{"8800123456791": {}}

	// a code consumed by a previous run is not flagged again even when
	// the local snapshot has not caught up
	result := Reconcile(lines, nil, known, nil)
	assert.Empty(t, result.Unmatched)
}

func TestReconcileExactMatchOnly(t *testing.T) {
	catalog := []models.CatalogRecord{
		{ID: 1, VariantBarcode: "08800123456789"},
	}
	lines := []models.OrderLine{
		{Code: "8800123456789"},
	}

	// leading-zero padding differences are non-matches
	result := Reconcile(lines, catalog, nil, nil)
	assert.Empty(t, result.Matched)
	require.Len(t, result.Unmatched, 1)
}

func TestReconcileTrimsWhitespace(t *testing.T) {
	catalog := []models.CatalogRecord{
		{ID: 1, VariantBarcode: " 8800123456789 "},
	}
	lines := []models.OrderLine{
		{Code: "8800123456789 "},
	}

	result := Reconcile(lines, catalog, nil, nil)
	require.Len(t, result.Matched, 1)
	assert.Empty(t, result.Unmatched)
}

func TestReconcileCodelessLines(t *testing.T) {
	lines := []models.OrderLine{
		{Code: "", Title: "Unscannable"},
	}

	result := Reconcile(lines, nil, nil, nil)
	require.Len(t, result.Unmatched, 1)
	assert.Equal(t, "Unscannable", result.Unmatched[0].Title)
}

func TestReconcileDuplicateOrderLines(t *testing.T) {
	catalog := []models.CatalogRecord{
		{ID: 1, VariantBarcode: "8800123456789"},
	}
	lines := []models.OrderLine{
		{Code: "8800123456789", Quantity: 1},
		{Code: "8800123456789", Quantity: 2},
	}

	// a record matches at most once however many lines reference it
	result := Reconcile(lines, catalog, nil, nil)
	require.Len(t, result.Matched, 1)
	assert.Empty(t, result.Unmatched)
}

func TestReconcileMissingSortedAndDeduped(t *testing.T) {
	expected := []string{"8800123456792", "8800123456790", "8800123456790", " "}

	result := Reconcile(nil, nil, nil, expected)
	assert.Equal(t, []string{"8800123456790", "8800123456792"}, result.MissingFromOrder)
}

func TestOrderCodes(t *testing.T) {
	lines := []models.OrderLine{
		{Code: "8800123456789"},
		{Code: "SAMPLE"},
		{Code: ""},
		{Code: "8800123456789"},
		{Code: "8800123456790"},
	}

	codes := OrderCodes(lines, "SAMPLE")
	assert.Equal(t, []string{"8800123456789", "8800123456790"}, codes)
}
