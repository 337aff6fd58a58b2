package update

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	supplier "goshopops_api/internal/supplier/models"

	"goshopops_api/internal/storefront/services"
	"goshopops_api/pkg/logger"

	"golang.org/x/time/rate"
)

// StockEngine applies inventory adjustments from a reconciled supplier
// order. Every mutation is operator-triggered and sequential.
type StockEngine struct {
	apiURL  string
	auth    services.AuthEngine
	limiter *rate.Limiter
	client  *http.Client
	log     logger.Logger
}

func NewStockEngine(apiURL string, auth services.AuthEngine, writer io.Writer) *StockEngine {
	return &StockEngine{
		apiURL:  apiURL,
		auth:    auth,
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     logger.NewLogger(writer, "[stock]"),
	}
}

func (e *StockEngine) Adjust(ctx context.Context, adj supplier.InventoryAdjustment) error {
	if err := e.limiter.Wait(ctx); err != nil {
		return err
	}

	payload := map[string]interface{}{
		"location_id":          adj.LocationID,
		"inventory_item_id":    adj.InventoryItemID,
		"available_adjustment": adj.Delta,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal adjustment: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		e.apiURL+"/inventory_levels/adjust.json", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	e.auth.SetApiKey(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("adjust request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	e.log.Log("Adjusted stock for %q by %+d", adj.ProductName, adj.Delta)
	return nil
}

// AdjustAll applies adjustments one by one and reports the first error
// together with how many were applied before it.
func (e *StockEngine) AdjustAll(ctx context.Context, adjustments []supplier.InventoryAdjustment) (int, error) {
	for i, adj := range adjustments {
		if err := e.Adjust(ctx, adj); err != nil {
			return i, err
		}
	}
	return len(adjustments), nil
}
