package handlers

import (
	"net/http"

	storefront "goshopops_api/internal/storefront/business"
	"goshopops_api/pkg/dbconnect"
)

// SaleHandler triggers the tag-driven sale workflow. Both endpoints
// walk the whole storefront catalog, so they are POST-only and meant
// for deliberate operator use.
type SaleHandler struct {
	dbconnect.Database
	sales *storefront.SaleService
}

func NewSaleHandler(db dbconnect.Database, sales *storefront.SaleService) *SaleHandler {
	return &SaleHandler{Database: db, sales: sales}
}

func (h *SaleHandler) ApplySalesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	updated, err := h.sales.ApplyAll(r.Context())
	if err != nil {
		http.Error(w, "Sale application failed: "+err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, map[string]int{"updated": updated})
}

func (h *SaleHandler) RevertSalesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	reverted, err := h.sales.RevertAll(r.Context())
	if err != nil {
		http.Error(w, "Sale revert failed: "+err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, map[string]int{"reverted": reverted})
}
