package business

import (
	"context"
	"io"

	"goshopops_api/internal/storefront/models/response"
	"goshopops_api/internal/storefront/services/get"
	"goshopops_api/internal/storefront/services/update"
	"goshopops_api/pkg/logger"

	"github.com/shopspring/decimal"
)

// SaleService drives the tag-based sale workflow: products tagged
// "soldes30" get 30% off their compare-at price, and reverting a sale
// restores the compare-at price and drops the tag.
type SaleService struct {
	catalog   *get.CatalogEngine
	prices    *update.PriceEngine
	discounts *DiscountEngine
	log       logger.Logger
}

func NewSaleService(catalog *get.CatalogEngine, prices *update.PriceEngine, discounts *DiscountEngine, writer io.Writer) *SaleService {
	return &SaleService{
		catalog:   catalog,
		prices:    prices,
		discounts: discounts,
		log:       logger.NewLogger(writer, "[sales]"),
	}
}

// ApplyAll walks the catalog and discounts every product with a sale
// tag. Returns how many variants were updated.
func (s *SaleService) ApplyAll(ctx context.Context) (int, error) {
	products, err := s.catalog.GetProducts(ctx, "", false)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, p := range products {
		percent, ok := s.discounts.ExtractDiscount(p.Tags)
		if !ok {
			continue
		}
		for _, v := range p.Variants {
			current, err := decimal.NewFromString(v.Price)
			if err != nil {
				continue
			}
			compareAt := parseCompareAt(v)
			base := current
			if compareAt != nil {
				base = *compareAt
			}

			discounted := s.discounts.DiscountedPrice(base, percent)
			if !s.discounts.NeedsUpdate(current, compareAt, discounted) {
				continue
			}

			baseStr := base.StringFixed(2)
			if err := s.prices.UpdateVariantPrice(ctx, v.ID, discounted.StringFixed(2), &baseStr); err != nil {
				return updated, err
			}
			updated++
		}
		s.log.Log("Applied %d%% sale to %q", percent, p.Title)
	}
	return updated, nil
}

// RevertAll restores compare-at prices and removes sale tags.
func (s *SaleService) RevertAll(ctx context.Context) (int, error) {
	products, err := s.catalog.GetProducts(ctx, "", false)
	if err != nil {
		return 0, err
	}

	reverted := 0
	for _, p := range products {
		percent, ok := s.discounts.ExtractDiscount(p.Tags)
		if !ok {
			continue
		}

		restored := false
		for _, v := range p.Variants {
			if v.CompareAtPrice == nil {
				continue
			}
			if err := s.prices.UpdateVariantPrice(ctx, v.ID, *v.CompareAtPrice, nil); err != nil {
				return reverted, err
			}
			restored = true
			reverted++
		}
		if !restored {
			continue
		}

		tags := s.discounts.StripTag(p.Tags, percent)
		if err := s.prices.UpdateProductTags(ctx, p.ID, tags); err != nil {
			return reverted, err
		}
		s.log.Log("Reverted sale on %q", p.Title)
	}
	return reverted, nil
}

func parseCompareAt(v response.Variant) *decimal.Decimal {
	if v.CompareAtPrice == nil {
		return nil
	}
	d, err := decimal.NewFromString(*v.CompareAtPrice)
	if err != nil {
		return nil
	}
	return &d
}
