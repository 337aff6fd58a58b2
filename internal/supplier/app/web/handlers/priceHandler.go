package handlers

import (
	"encoding/json"
	"net/http"

	"goshopops_api/config/values"
	"goshopops_api/internal/supplier/business"
	"goshopops_api/internal/supplier/models"
	"goshopops_api/pkg/dbconnect"

	"github.com/shopspring/decimal"
)

// PriceHandler previews suggested retail prices for a batch of supplier
// costs, using the operator defaults unless the request overrides them.
type PriceHandler struct {
	dbconnect.Database
	defaults values.OperatorDefaults
}

func NewPriceHandler(db dbconnect.Database, defaults values.OperatorDefaults) *PriceHandler {
	return &PriceHandler{Database: db, defaults: defaults}
}

type priceRequest struct {
	Costs  []string `json:"costs"`
	FxRate *float64 `json:"fx_rate"`
	Markup *float64 `json:"markup"`
	Mode   string   `json:"mode"`
}

type pricedCost struct {
	Cost           string           `json:"cost"`
	CostConverted  *decimal.Decimal `json:"cost_converted"`
	RawPrice       *decimal.Decimal `json:"raw_price"`
	SuggestedPrice *decimal.Decimal `json:"suggested_price"`
}

func (h *PriceHandler) PreviewHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req priceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Failed to decode request body", http.StatusBadRequest)
		return
	}

	fxRate := h.defaults.FxRate
	if req.FxRate != nil {
		fxRate = *req.FxRate
	}
	markup := h.defaults.Markup
	if req.Markup != nil {
		markup = *req.Markup
	}
	mode := business.RoundingMode(h.defaults.RoundingMode)
	if req.Mode != "" {
		mode = business.RoundingMode(req.Mode)
	}

	engine := business.NewPricingEngine(decimal.NewFromFloat(fxRate), decimal.NewFromFloat(markup), mode)

	results := make([]pricedCost, 0, len(req.Costs))
	for _, raw := range req.Costs {
		priced := pricedCost{Cost: raw}
		if cost, err := decimal.NewFromString(raw); err == nil {
			row := engine.PriceRow(models.OrderLine{UnitPrice: &cost},
				h.defaults.ProductType, h.defaults.WeightGrams)
			priced.CostConverted = row.CostAmount
			priced.RawPrice = row.RawPrice
			priced.SuggestedPrice = row.SuggestedPrice
		}
		results = append(results, priced)
	}

	writeJSON(w, results)
}
