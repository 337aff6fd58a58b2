package business

import (
	"strings"

	"goshopops_api/internal/supplier/models"
)

// StockService turns a reconciled supplier order into inventory
// adjustment payloads for the storefront collaborator. Purely a
// projection; nothing here talks to the network.
type StockService struct {
	locationID int64
}

func NewStockService(locationID int64) *StockService {
	return &StockService{locationID: locationID}
}

// Adjustments pairs each order line with its matched catalog record and
// emits one stock delta per pairing. Lines with no match come back as
// warnings so the operator can audit them against the paper order.
func (s *StockService) Adjustments(lines []models.OrderLine, matched []models.CatalogRecord) ([]models.InventoryAdjustment, []string) {
	byBarcode := make(map[string]models.CatalogRecord, len(matched))
	for _, rec := range matched {
		byBarcode[strings.TrimSpace(rec.VariantBarcode)] = rec
	}

	var adjustments []models.InventoryAdjustment
	var warnings []string
	for _, line := range lines {
		rec, ok := byBarcode[strings.TrimSpace(line.Code)]
		if !ok || rec.InventoryItemID == 0 {
			warnings = append(warnings, line.RawName)
			continue
		}
		if line.Quantity == 0 {
			continue
		}
		adjustments = append(adjustments, models.InventoryAdjustment{
			InventoryItemID: rec.InventoryItemID,
			LocationID:      s.locationID,
			Delta:           line.Quantity,
			ProductName:     line.RawName,
		})
	}
	return adjustments, warnings
}
