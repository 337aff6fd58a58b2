package business

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goshopops_api/internal/supplier/models"
)

func TestStockServiceAdjustments(t *testing.T) {
	matched := []models.CatalogRecord{
		{ID: 1, VariantBarcode: "8800123456789", InventoryItemID: 501},
		{ID: 2, VariantBarcode: "8800123456790", InventoryItemID: 0},
	}
	lines := []models.OrderLine{
		{Code: "8800123456789", RawName: "Velvet Lip Tint", Quantity: 3},
		{Code: "8800123456790", RawName: "Hydra Cream", Quantity: 2},
		{Code: "8800123456791", RawName: "Clay Mask", Quantity: 4},
		{Code: "8800123456789", RawName: "Velvet Lip Tint", Quantity: 0},
	}

	adjustments, warnings := NewStockService(77).Adjustments(lines, matched)

	require.Len(t, adjustments, 1)
	assert.Equal(t, int64(501), adjustments[0].InventoryItemID)
	assert.Equal(t, int64(77), adjustments[0].LocationID)
	assert.Equal(t, 3, adjustments[0].Delta)
	assert.Equal(t, "Velvet Lip Tint", adjustments[0].ProductName)

	// the record without an inventory item and the unmatched line both
	// surface as warnings; the zero-quantity line is dropped silently
	assert.Equal(t, []string{"Hydra Cream", "Clay Mask"}, warnings)
}
