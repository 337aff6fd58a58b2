package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"goshopops_api/internal/supplier/models"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// SnapshotRepository persists the storefront catalog between runs,
// keyed by product ID with keep-last semantics. It replaces the flat
// CSV cache an operator would otherwise re-download on every session.
type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Upsert(records []models.CatalogRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot upsert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO catalog.snapshot
			(id, vendor, title, product_type, price, compare_at_price,
			 variant_id, inventory_item_id, variant_barcode, updated_at, custom)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			vendor = EXCLUDED.vendor,
			title = EXCLUDED.title,
			product_type = EXCLUDED.product_type,
			price = EXCLUDED.price,
			compare_at_price = EXCLUDED.compare_at_price,
			variant_id = EXCLUDED.variant_id,
			inventory_item_id = EXCLUDED.inventory_item_id,
			variant_barcode = EXCLUDED.variant_barcode,
			updated_at = EXCLUDED.updated_at,
			custom = EXCLUDED.custom`)
	if err != nil {
		return fmt.Errorf("failed to prepare snapshot upsert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		custom, err := json.Marshal(rec.Custom)
		if err != nil {
			return fmt.Errorf("failed to encode custom attributes for product %d: %w", rec.ID, err)
		}
		_, err = stmt.Exec(
			rec.ID, rec.Vendor, rec.Title, rec.ProductType,
			decimalOrNil(rec.Price), decimalOrNil(rec.CompareAtPrice),
			rec.VariantID, rec.InventoryItemID, nullable(rec.VariantBarcode),
			rec.UpdatedAt, custom,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert product %d: %w", rec.ID, err)
		}
	}
	return tx.Commit()
}

func (r *SnapshotRepository) GetAll() ([]models.CatalogRecord, error) {
	return r.query(`
		SELECT id, vendor, title, product_type, price, compare_at_price,
		       variant_id, inventory_item_id, variant_barcode, updated_at, custom
		FROM catalog.snapshot ORDER BY id DESC`)
}

func (r *SnapshotRepository) GetByBarcodes(barcodes []string) ([]models.CatalogRecord, error) {
	return r.query(`
		SELECT id, vendor, title, product_type, price, compare_at_price,
		       variant_id, inventory_item_id, variant_barcode, updated_at, custom
		FROM catalog.snapshot WHERE variant_barcode = ANY($1) ORDER BY id DESC`,
		pq.Array(barcodes))
}

// LastUpdatedAt returns the newest storefront update stamp in the
// snapshot, used for incremental fetches. Empty when the snapshot is.
func (r *SnapshotRepository) LastUpdatedAt() (string, error) {
	var last sql.NullString
	err := r.db.QueryRow(`SELECT MAX(updated_at) FROM catalog.snapshot`).Scan(&last)
	if err != nil {
		return "", fmt.Errorf("failed to read last snapshot update: %w", err)
	}
	return last.String, nil
}

// KnownCodes loads the barcodes already consumed by previous runs.
func (r *SnapshotRepository) KnownCodes() (map[string]struct{}, error) {
	rows, err := r.db.Query(`SELECT code FROM catalog.known_codes`)
	if err != nil {
		return nil, fmt.Errorf("failed to query known codes: %w", err)
	}
	defer rows.Close()

	known := make(map[string]struct{})
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan known code: %w", err)
		}
		known[code] = struct{}{}
	}
	return known, rows.Err()
}

// MarkCodesKnown records codes consumed by this run.
func (r *SnapshotRepository) MarkCodesKnown(codes []string) error {
	if len(codes) == 0 {
		return nil
	}
	_, err := r.db.Exec(`
		INSERT INTO catalog.known_codes (code)
		SELECT unnest($1::varchar[])
		ON CONFLICT (code) DO NOTHING`, pq.Array(codes))
	if err != nil {
		return fmt.Errorf("failed to mark codes known: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) query(q string, args ...interface{}) ([]models.CatalogRecord, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog snapshot: %w", err)
	}
	defer rows.Close()

	var records []models.CatalogRecord
	for rows.Next() {
		var (
			rec         models.CatalogRecord
			price       sql.NullString
			compare     sql.NullString
			barcode     sql.NullString
			updatedAt   sql.NullString
			customBytes []byte
		)
		err := rows.Scan(&rec.ID, &rec.Vendor, &rec.Title, &rec.ProductType,
			&price, &compare, &rec.VariantID, &rec.InventoryItemID,
			&barcode, &updatedAt, &customBytes)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog record: %w", err)
		}

		rec.Price = parseNullDecimal(price)
		rec.CompareAtPrice = parseNullDecimal(compare)
		rec.VariantBarcode = barcode.String
		rec.UpdatedAt = updatedAt.String
		if len(customBytes) > 0 {
			if err := json.Unmarshal(customBytes, &rec.Custom); err != nil {
				return nil, fmt.Errorf("failed to decode custom attributes for product %d: %w", rec.ID, err)
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func parseNullDecimal(s sql.NullString) *decimal.Decimal {
	if !s.Valid {
		return nil
	}
	d, err := decimal.NewFromString(s.String)
	if err != nil {
		return nil
	}
	return &d
}

func decimalOrNil(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
