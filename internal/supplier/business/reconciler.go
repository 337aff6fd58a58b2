package business

import (
	"sort"
	"strings"

	"goshopops_api/internal/supplier/models"
)

// Reconcile joins order lines against a catalog snapshot by identifying
// code. The join is exact string equality after trimming whitespace;
// leading-zero padding differences are non-matches on purpose, because
// the suppliers emit fixed-width codes.
//
// knownCodes are codes consumed by a previous run: lines carrying one
// are dropped from Unmatched even when the local snapshot has not
// caught up yet, keeping repeated runs idempotent. expectedCodes is the
// reference code set used only to surface "not found" warnings.
//
// Inputs are never mutated; the snapshot is read-only for the whole run.
func Reconcile(
	lines []models.OrderLine,
	catalog []models.CatalogRecord,
	knownCodes map[string]struct{},
	expectedCodes []string,
) models.ReconciliationResult {
	barcodeIndex := make(map[string]int, len(catalog))
	for i, rec := range catalog {
		barcode := strings.TrimSpace(rec.VariantBarcode)
		if barcode == "" {
			continue
		}
		barcodeIndex[barcode] = i
	}

	var result models.ReconciliationResult
	matchedBarcodes := make(map[string]struct{})
	matchedIdx := make(map[int]struct{})

	for _, line := range lines {
		code := strings.TrimSpace(line.Code)
		idx, found := barcodeIndex[code]
		if code != "" && found {
			matchedBarcodes[code] = struct{}{}
			if _, dup := matchedIdx[idx]; !dup {
				matchedIdx[idx] = struct{}{}
				result.Matched = append(result.Matched, catalog[idx])
			}
			continue
		}
		if _, known := knownCodes[code]; known && code != "" {
			continue
		}
		result.Unmatched = append(result.Unmatched, line)
	}

	for _, code := range expectedCodes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if _, ok := matchedBarcodes[code]; !ok {
			result.MissingFromOrder = append(result.MissingFromOrder, code)
		}
	}
	sort.Strings(result.MissingFromOrder)
	result.MissingFromOrder = dedupe(result.MissingFromOrder)

	return result
}

// OrderCodes collects the distinct usable codes of an order, preserving
// first-seen order. Lines without a code contribute nothing.
func OrderCodes(lines []models.OrderLine, sampleToken string) []string {
	seen := make(map[string]struct{})
	var codes []string
	for _, line := range lines {
		if !line.HasCode(sampleToken) {
			continue
		}
		code := strings.TrimSpace(line.Code)
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}

func dedupe(sorted []string) []string {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
