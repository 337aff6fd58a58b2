package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// weightPattern accepts the free-text weight spellings seen in supplier
// exports: "208g", "0.2 kg", "7 oz", "1 lb".
var weightPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(g|kg|oz|lb)\b`)

const (
	gramsPerOunce = 28.3495
	gramsPerPound = 453.592
)

// ParseWeight converts a free-text weight to grams. The second return
// value is false when no weight token is present.
func ParseWeight(text string) (float64, bool) {
	m := weightPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}

	switch strings.ToLower(m[2]) {
	case "kg":
		return value * 1000, true
	case "oz":
		return value * gramsPerOunce, true
	case "lb":
		return value * gramsPerPound, true
	default:
		return value, true
	}
}
