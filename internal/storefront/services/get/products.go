package get

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"goshopops_api/internal/storefront/models/response"
	"goshopops_api/internal/storefront/services"
	"goshopops_api/pkg/logger"

	"golang.org/x/time/rate"
)

const pageLimit = 250

// metafieldRetryLimit bounds re-reads of a metafield that came back
// empty; the admin API occasionally returns blank values right after a
// product edit.
const metafieldRetryLimit = 3

// nextLinkPattern reads the cursor URL out of the pagination header:
// Link: <https://.../products.json?page_info=...>; rel="next"
var nextLinkPattern = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

// CatalogEngine fetches the storefront product catalog page by page.
type CatalogEngine struct {
	apiURL  string
	auth    services.AuthEngine
	limiter *rate.Limiter
	client  *http.Client
	log     logger.Logger
}

func NewCatalogEngine(apiURL string, auth services.AuthEngine, writer io.Writer) *CatalogEngine {
	return &CatalogEngine{
		apiURL:  apiURL,
		auth:    auth,
		limiter: rate.NewLimiter(rate.Every(time.Second/2), 2),
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     logger.NewLogger(writer, "[catalog]"),
	}
}

// GetProducts walks the paginated product listing. updatedMin narrows
// the fetch to products changed since the last snapshot; onlyRecent
// stops after the first page. Inactive products are dropped.
func (e *CatalogEngine) GetProducts(ctx context.Context, updatedMin string, onlyRecent bool) ([]response.Product, error) {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", pageLimit))
	params.Set("order", "updated_at asc")
	if updatedMin != "" {
		params.Set("updated_at_min", updatedMin)
	}
	nextURL := fmt.Sprintf("%s/products.json?%s", e.apiURL, params.Encode())

	var products []response.Product
	for nextURL != "" {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, nextURL, nil)
		if err != nil {
			return nil, err
		}
		e.auth.SetApiKey(req)

		resp, err := e.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("products request failed: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status code: %s", resp.Status)
		}

		var page response.ProductsResponse
		if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("decoding products page: %w", err)
		}
		resp.Body.Close()

		for _, p := range page.Products {
			if p.Status != "" && p.Status != "active" {
				continue
			}
			products = append(products, p)
		}

		if onlyRecent {
			break
		}
		nextURL = nextPageURL(resp.Header.Get("Link"))
	}

	e.log.Log("Fetched %d products", len(products))
	return products, nil
}

func nextPageURL(linkHeader string) string {
	m := nextLinkPattern.FindStringSubmatch(linkHeader)
	if m == nil {
		return ""
	}
	return m[1]
}

// GetMetafields reads the custom-namespace metafields of one product.
// Keys that come back empty are retried a bounded number of times.
func (e *CatalogEngine) GetMetafields(ctx context.Context, productID int64, keys []string) (map[string]string, error) {
	wanted := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		wanted[k] = struct{}{}
	}

	values := make(map[string]string, len(keys))
	for attempt := 0; attempt < metafieldRetryLimit; attempt++ {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			fmt.Sprintf("%s/products/%d/metafields.json", e.apiURL, productID), nil)
		if err != nil {
			return nil, err
		}
		e.auth.SetApiKey(req)

		resp, err := e.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("metafields request failed: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status code: %s", resp.Status)
		}

		var page response.MetafieldsResponse
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("decoding metafields: %w", err)
		}

		for _, meta := range page.Metafields {
			if meta.Namespace != "custom" {
				continue
			}
			if _, ok := wanted[meta.Key]; ok && meta.Value != "" {
				values[meta.Key] = meta.Value
			}
		}
		if len(values) == len(wanted) {
			break
		}
	}
	return values, nil
}
