package models

import "github.com/shopspring/decimal"

// CatalogRecord is one storefront product as seen by the reconciler.
// The reconciler treats the whole collection as an immutable snapshot;
// only the storefront collaborator ever writes it back.
type CatalogRecord struct {
	ID              int64
	Vendor          string
	Title           string
	ProductType     string
	Price           *decimal.Decimal
	CompareAtPrice  *decimal.Decimal
	VariantID       int64
	InventoryItemID int64
	VariantBarcode  string // empty when the storefront has no barcode set
	UpdatedAt       string
	Custom          map[string]string
}

// ReconciliationResult partitions an order against the catalog snapshot.
type ReconciliationResult struct {
	// Matched are catalog rows whose barcode equals some order line code.
	Matched []CatalogRecord
	// Unmatched are order lines with no catalog barcode match, candidates
	// for new-product creation. Codes already consumed by a prior run are
	// excluded even when the local snapshot is stale.
	Unmatched []OrderLine
	// MissingFromOrder are reference codes not found among the matched
	// catalog barcodes. Informational only, never drives a mutation.
	MissingFromOrder []string
}

// InventoryAdjustment is one stock delta ready for the storefront API.
type InventoryAdjustment struct {
	InventoryItemID int64
	LocationID      int64
	Delta           int
	ProductName     string
}
