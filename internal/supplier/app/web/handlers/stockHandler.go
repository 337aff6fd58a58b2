package handlers

import (
	"io"
	"net/http"

	"goshopops_api/config/values"
	"goshopops_api/internal/storefront/services/get"
	"goshopops_api/internal/storefront/services/update"
	"goshopops_api/internal/supplier/business"
	"goshopops_api/internal/supplier/parse"
	"goshopops_api/pkg/dbconnect"
)

// StockHandler pushes a received supplier order into storefront stock.
// The uploaded document is reconciled against the snapshot and each
// matched line becomes one inventory adjustment.
type StockHandler struct {
	dbconnect.Database
	store     SnapshotStore
	inventory *get.InventoryEngine
	stock     *update.StockEngine
	defaults  values.OperatorDefaults
}

func NewStockHandler(db dbconnect.Database, store SnapshotStore, inventory *get.InventoryEngine, stock *update.StockEngine, defaults values.OperatorDefaults) *StockHandler {
	return &StockHandler{
		Database:  db,
		store:     store,
		inventory: inventory,
		stock:     stock,
		defaults:  defaults,
	}
}

type stockItem struct {
	ProductName       string `json:"product_name"`
	Delta             int    `json:"delta"`
	PreviousAvailable int    `json:"previous_available"`
}

type stockApplyResponse struct {
	Applied  int         `json:"applied"`
	Items    []stockItem `json:"items"`
	Warnings []string    `json:"warnings"`
}

func (h *StockHandler) ApplyStockHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	sampleToken := h.defaults.SampleToken
	if sampleToken == "" {
		sampleToken = parse.DefaultSampleToken
	}

	parser := parse.NewOrderDocumentParser(sampleToken, h.defaults.Vendor, false)
	lines, _ := parser.Parse(string(body))

	catalog, err := h.store.GetByBarcodes(business.OrderCodes(lines, sampleToken))
	if err != nil {
		http.Error(w, "Failed to load catalog snapshot", http.StatusInternalServerError)
		return
	}
	result := business.Reconcile(lines, catalog, nil, nil)

	locationID, err := h.inventory.PrimaryLocation(r.Context())
	if err != nil {
		http.Error(w, "Failed to resolve shop location: "+err.Error(), http.StatusBadGateway)
		return
	}

	adjustments, warnings := business.NewStockService(locationID).Adjustments(lines, result.Matched)

	// read each level before adjusting so the operator can audit the
	// resulting counts against the paper order
	items := make([]stockItem, 0, len(adjustments))
	for _, adj := range adjustments {
		available, err := h.inventory.GetLevel(r.Context(), adj.InventoryItemID, adj.LocationID)
		if err != nil {
			http.Error(w, "Failed to read stock level: "+err.Error(), http.StatusBadGateway)
			return
		}
		items = append(items, stockItem{
			ProductName:       adj.ProductName,
			Delta:             adj.Delta,
			PreviousAvailable: available,
		})
	}

	applied, err := h.stock.AdjustAll(r.Context(), adjustments)
	if err != nil {
		http.Error(w, "Stock adjustment failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, stockApplyResponse{Applied: applied, Items: items, Warnings: warnings})
}
