package handlers

import (
	"io"
	"net/http"

	"goshopops_api/config/values"
	"goshopops_api/internal/supplier/business"
	"goshopops_api/internal/supplier/models"
	"goshopops_api/internal/supplier/parse"
	"goshopops_api/metrics"
	"goshopops_api/pkg/dbconnect"

	"github.com/shopspring/decimal"
)

// ReconcileHandler joins an uploaded order document against the stored
// catalog snapshot and prices the unmatched lines with the operator
// defaults. It never mutates the storefront; marking codes as consumed
// is opt-in via the mark_known query flag.
type ReconcileHandler struct {
	dbconnect.Database
	store    SnapshotStore
	defaults values.OperatorDefaults
}

func NewReconcileHandler(db dbconnect.Database, store SnapshotStore, defaults values.OperatorDefaults) *ReconcileHandler {
	return &ReconcileHandler{Database: db, store: store, defaults: defaults}
}

type reconcileResponse struct {
	Matched          []models.CatalogRecord `json:"matched"`
	Unmatched        []models.OrderLine     `json:"unmatched"`
	PricedUnmatched  []models.PricedRow     `json:"priced_unmatched"`
	MissingFromOrder []string               `json:"missing_from_order"`
}

func (h *ReconcileHandler) ReconcileOrderHandler(w http.ResponseWriter, r *http.Request) {
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

	parser := parse.NewOrderDocumentParser(sampleToken, h.defaults.Vendor, h.defaults.IncludeSamples)
	lines, _ := parser.Parse(string(body))
	expected := business.OrderCodes(lines, sampleToken)

	catalog, err := h.store.GetByBarcodes(expected)
	if err != nil {
		http.Error(w, "Failed to load catalog snapshot", http.StatusInternalServerError)
		return
	}
	known, err := h.store.KnownCodes()
	if err != nil {
		http.Error(w, "Failed to load known codes", http.StatusInternalServerError)
		return
	}

	result := business.Reconcile(lines, catalog, known, expected)
	metrics.RecordReconciliation(len(result.Matched), len(result.Unmatched), len(result.MissingFromOrder))

	engine := business.NewPricingEngine(
		decimal.NewFromFloat(h.defaults.FxRate),
		decimal.NewFromFloat(h.defaults.Markup),
		business.RoundingMode(h.defaults.RoundingMode),
	)
	priced := engine.PriceRows(result.Unmatched, h.defaults.ProductType, h.defaults.WeightGrams)

	if r.URL.Query().Get("mark_known") == "true" {
		codes := business.OrderCodes(result.Unmatched, sampleToken)
		if err := h.store.MarkCodesKnown(codes); err != nil {
			http.Error(w, "Failed to record consumed codes", http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, reconcileResponse{
		Matched:          result.Matched,
		Unmatched:        result.Unmatched,
		PricedUnmatched:  priced,
		MissingFromOrder: result.MissingFromOrder,
	})
}
