package parse

import (
	"regexp"
	"strings"

	"goshopops_api/internal/supplier/models"
	"goshopops_api/pkg/business/service"
)

// sizePattern matches a quantity plus a unit from the closed vocabulary.
// Comma and dot decimals are both accepted; the captured unit is
// normalized to lower case.
var sizePattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(ml|g|kg|l|cl|mg|oz)\b`)

// vendorSplitMaxLen bounds what still looks like a brand token on the
// left of " - "; longer segments mean the dash belongs to the title.
const vendorSplitMaxLen = 30

var textService = service.NewTextService()

// DecomposeName splits a free-text product name into vendor, title and
// size. fallbackVendor is used when the name carries no vendor segment.
// An empty name yields an all-empty result.
func DecomposeName(name, fallbackVendor string) models.DecomposedName {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.DecomposedName{}
	}

	vendor := fallbackVendor
	remainder := name
	if strings.Count(name, " - ") == 1 {
		parts := strings.SplitN(name, " - ", 2)
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])
		if left != "" && right != "" && len(left) <= vendorSplitMaxLen {
			vendor = left
			remainder = right
		}
	}

	size, remainder := extractSize(remainder)

	return models.DecomposedName{
		Vendor: vendor,
		Title:  textService.SoftTitle(remainder),
		Size:   size,
	}
}

// extractSize finds the last quantity+unit token in text. The token is
// stripped from the returned text only when nothing but whitespace
// follows it; an embedded size stays in place but is still reported.
func extractSize(text string) (string, string) {
	matches := sizePattern.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return "", text
	}

	last := matches[len(matches)-1]
	qty := textService.NormalizeDecimal(text[last[2]:last[3]])
	unit := strings.ToLower(text[last[4]:last[5]])
	size := qty + " " + unit

	if strings.TrimSpace(text[last[1]:]) == "" {
		text = strings.TrimRight(text[:last[0]], " -")
	}
	return size, text
}
