package handlers

import "goshopops_api/internal/supplier/models"

type Handler interface {
	Ping() error
}

// SnapshotStore is the catalog persistence surface the handlers read
// and annotate. Satisfied by storage.SnapshotRepository.
type SnapshotStore interface {
	GetAll() ([]models.CatalogRecord, error)
	GetByBarcodes(barcodes []string) ([]models.CatalogRecord, error)
	KnownCodes() (map[string]struct{}, error)
	MarkCodesKnown(codes []string) error
}
