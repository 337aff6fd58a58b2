package update

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"goshopops_api/internal/storefront/services"
	"goshopops_api/pkg/logger"

	"golang.org/x/time/rate"
)

// PriceEngine pushes variant price changes and product tag updates,
// the two mutations the sale workflow needs.
type PriceEngine struct {
	apiURL  string
	auth    services.AuthEngine
	limiter *rate.Limiter
	client  *http.Client
	log     logger.Logger
}

func NewPriceEngine(apiURL string, auth services.AuthEngine, writer io.Writer) *PriceEngine {
	return &PriceEngine{
		apiURL:  apiURL,
		auth:    auth,
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     logger.NewLogger(writer, "[prices]"),
	}
}

// UpdateVariantPrice sets price and compare-at price. A nil compareAt
// clears the compare-at price, which ends a sale.
func (e *PriceEngine) UpdateVariantPrice(ctx context.Context, variantID int64, price string, compareAt *string) error {
	payload := map[string]interface{}{
		"variant": map[string]interface{}{
			"id":               variantID,
			"price":            price,
			"compare_at_price": compareAt,
		},
	}
	endpoint := fmt.Sprintf("%s/variants/%d.json", e.apiURL, variantID)
	if err := e.put(ctx, endpoint, payload); err != nil {
		return err
	}
	e.log.Log("Updated variant %d price to %s", variantID, price)
	return nil
}

func (e *PriceEngine) UpdateProductTags(ctx context.Context, productID int64, tags string) error {
	payload := map[string]interface{}{
		"product": map[string]interface{}{
			"id":   productID,
			"tags": tags,
		},
	}
	endpoint := fmt.Sprintf("%s/products/%d.json", e.apiURL, productID)
	return e.put(ctx, endpoint, payload)
}

func (e *PriceEngine) put(ctx context.Context, endpoint string, payload interface{}) error {
	if err := e.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	e.auth.SetApiKey(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %s", resp.Status)
	}
	return nil
}
