package handlers

import (
	"net/http"

	"goshopops_api/config/values"
	"goshopops_api/internal/labels"
	"goshopops_api/internal/storefront/business"
	"goshopops_api/pkg/dbconnect"
)

// CatalogHandler serves the stored snapshot and triggers refreshes from
// the storefront. Refreshing is the only endpoint that reaches the
// network, and only when the operator asks for it.
type CatalogHandler struct {
	dbconnect.Database
	store       SnapshotStore
	snapshots   *business.SnapshotService
	labelValues values.LabelValues
}

func NewCatalogHandler(db dbconnect.Database, store SnapshotStore, snapshots *business.SnapshotService, labelValues values.LabelValues) *CatalogHandler {
	return &CatalogHandler{Database: db, store: store, snapshots: snapshots, labelValues: labelValues}
}

func (h *CatalogHandler) GetCatalogHandler(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.GetAll()
	if err != nil {
		http.Error(w, "Failed to load catalog snapshot", http.StatusInternalServerError)
		return
	}
	writeJSON(w, records)
}

func (h *CatalogHandler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	force := r.URL.Query().Get("force") == "true"
	withMetafields := r.URL.Query().Get("metafields") != "false"

	count, err := h.snapshots.Refresh(r.Context(), force, withMetafields)
	if err != nil {
		http.Error(w, "Snapshot refresh failed: "+err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, map[string]int{"refreshed": count})
}

type labelResponse struct {
	ProductID   int64  `json:"product_id"`
	Display     string `json:"display"`
	Translation string `json:"translation"`
}

// LabelsHandler returns the assembled label text for every snapshot
// product; rendering happens elsewhere.
func (h *CatalogHandler) LabelsHandler(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.GetAll()
	if err != nil {
		http.Error(w, "Failed to load catalog snapshot", http.StatusInternalServerError)
		return
	}

	out := make([]labelResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, labelResponse{
			ProductID:   rec.ID,
			Display:     labels.DisplayLabel(rec),
			Translation: labels.TranslationBlock(rec, h.labelValues),
		})
	}
	writeJSON(w, out)
}
