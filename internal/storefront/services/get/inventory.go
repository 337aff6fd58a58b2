package get

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"goshopops_api/internal/storefront/models/response"
	"goshopops_api/internal/storefront/services"
	"goshopops_api/pkg/logger"

	"golang.org/x/time/rate"
)

// InventoryEngine reads stock levels and the shop location. The shop
// runs a single location; the first one returned is authoritative.
type InventoryEngine struct {
	apiURL  string
	auth    services.AuthEngine
	limiter *rate.Limiter
	client  *http.Client
	log     logger.Logger
}

func NewInventoryEngine(apiURL string, auth services.AuthEngine, writer io.Writer) *InventoryEngine {
	return &InventoryEngine{
		apiURL:  apiURL,
		auth:    auth,
		limiter: rate.NewLimiter(rate.Every(time.Second/2), 2),
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     logger.NewLogger(writer, "[inventory]"),
	}
}

func (e *InventoryEngine) PrimaryLocation(ctx context.Context) (int64, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.apiURL+"/locations.json", nil)
	if err != nil {
		return 0, err
	}
	e.auth.SetApiKey(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("locations request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	var page response.LocationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return 0, fmt.Errorf("decoding locations: %w", err)
	}
	if len(page.Locations) == 0 {
		return 0, fmt.Errorf("storefront has no locations")
	}
	return page.Locations[0].ID, nil
}

func (e *InventoryEngine) GetLevel(ctx context.Context, inventoryItemID, locationID int64) (int, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	url := fmt.Sprintf("%s/inventory_levels.json?inventory_item_ids=%d&location_ids=%d",
		e.apiURL, inventoryItemID, locationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	e.auth.SetApiKey(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("inventory levels request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	var page response.InventoryLevelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return 0, fmt.Errorf("decoding inventory levels: %w", err)
	}
	if len(page.InventoryLevels) == 0 {
		return 0, nil
	}
	return page.InventoryLevels[0].Available, nil
}
