package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"goshopops_api/config/values"
	"goshopops_api/internal/supplier/models"
	"goshopops_api/internal/supplier/parse"
	"goshopops_api/metrics"
	"goshopops_api/pkg/dbconnect"
)

// OrderHandler parses uploaded supplier order documents into canonical
// rows. The text path and the CSV path share the defaults block.
type OrderHandler struct {
	dbconnect.Database
	defaults values.OperatorDefaults
}

func NewOrderHandler(db dbconnect.Database, defaults values.OperatorDefaults) *OrderHandler {
	return &OrderHandler{Database: db, defaults: defaults}
}

type parsedOrderResponse struct {
	Lines   []models.OrderLine `json:"lines"`
	Parsed  int                `json:"parsed"`
	Skipped int                `json:"skipped"`
}

func (h *OrderHandler) ParseTextHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	includeSamples := h.defaults.IncludeSamples
	if v := r.URL.Query().Get("include_samples"); v != "" {
		includeSamples = v == "true" || v == "1"
	}

	parser := parse.NewOrderDocumentParser(h.defaults.SampleToken, h.defaults.Vendor, includeSamples)
	lines, skipped := parser.Parse(string(body))
	metrics.RecordParsedLines(len(lines), skipped)

	writeJSON(w, parsedOrderResponse{Lines: lines, Parsed: len(lines), Skipped: skipped})
}

type parsedCSVResponse struct {
	Lines  []parse.CSVOrderLine `json:"lines"`
	Parsed int                  `json:"parsed"`
}

func (h *OrderHandler) ParseCSVHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parser := parse.NewCSVOrderParser(parse.DefaultCSVColumns(),
		r.URL.Query().Get("encoding"), h.defaults.Vendor, h.defaults.WeightGrams)
	lines, err := parser.Parse(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	metrics.RecordParsedLines(len(lines), 0)

	writeJSON(w, parsedCSVResponse{Lines: lines, Parsed: len(lines)})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
