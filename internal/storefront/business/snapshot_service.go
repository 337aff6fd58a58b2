package business

import (
	"context"
	"io"

	"goshopops_api/internal/storefront/models/response"
	"goshopops_api/internal/storefront/services/get"
	"goshopops_api/internal/supplier/models"
	"goshopops_api/internal/supplier/storage"
	"goshopops_api/pkg/logger"

	"github.com/shopspring/decimal"
)

// DefaultMetafieldKeys are the custom attributes carried onto labels.
var DefaultMetafieldKeys = []string{
	"moyenne_description", "taille", "ingredients", "utilisation",
	"routine", "periode_mois", "texte_recyclage",
}

// SnapshotService refreshes the local catalog snapshot from the
// storefront. The snapshot is the read-only catalog view every
// reconciliation run works against.
type SnapshotService struct {
	engine *get.CatalogEngine
	repo   *storage.SnapshotRepository
	log    logger.Logger
}

func NewSnapshotService(engine *get.CatalogEngine, repo *storage.SnapshotRepository, writer io.Writer) *SnapshotService {
	return &SnapshotService{
		engine: engine,
		repo:   repo,
		log:    logger.NewLogger(writer, "[snapshot]"),
	}
}

// Refresh fetches changed products and merges them into the stored
// snapshot keyed by product ID, keeping the last version of each.
// force ignores the stored update stamp and re-fetches everything;
// withMetafields additionally pulls the label attributes (slower).
func (s *SnapshotService) Refresh(ctx context.Context, force, withMetafields bool) (int, error) {
	updatedMin := ""
	if !force {
		last, err := s.repo.LastUpdatedAt()
		if err != nil {
			return 0, err
		}
		updatedMin = last
	}

	products, err := s.engine.GetProducts(ctx, updatedMin, false)
	if err != nil {
		return 0, err
	}

	records := make([]models.CatalogRecord, 0, len(products))
	for _, p := range products {
		rec := toCatalogRecord(p)
		if withMetafields {
			custom, err := s.engine.GetMetafields(ctx, p.ID, DefaultMetafieldKeys)
			if err != nil {
				s.log.Log("Metafields unavailable for product %d: %v", p.ID, err)
			} else {
				rec.Custom = custom
			}
		}
		records = append(records, rec)
	}

	if err := s.repo.Upsert(records); err != nil {
		return 0, err
	}
	s.log.Log("Snapshot refreshed with %d products", len(records))
	return len(records), nil
}

// toCatalogRecord flattens a product to its first variant, the only
// one this single-variant shop uses.
func toCatalogRecord(p response.Product) models.CatalogRecord {
	rec := models.CatalogRecord{
		ID:          p.ID,
		Vendor:      p.Vendor,
		Title:       p.Title,
		ProductType: p.ProductType,
		UpdatedAt:   p.UpdatedAt,
	}
	if len(p.Variants) == 0 {
		return rec
	}

	v := p.Variants[0]
	rec.VariantID = v.ID
	rec.InventoryItemID = v.InventoryItemID
	if v.Barcode != nil {
		rec.VariantBarcode = *v.Barcode
	}
	if d, err := decimal.NewFromString(v.Price); err == nil {
		rec.Price = &d
	}
	if v.CompareAtPrice != nil {
		if d, err := decimal.NewFromString(*v.CompareAtPrice); err == nil {
			rec.CompareAtPrice = &d
		}
	}
	return rec
}
