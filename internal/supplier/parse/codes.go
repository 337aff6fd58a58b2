package parse

import (
	"regexp"
	"strconv"
)

// Barcode extraction. Supplier exports bury the retail code inside the
// free-text product name after a "barcode" marker, with the separator
// varying between colon, hyphen and plain whitespace. The patterns are
// package variables so a format drift only touches this file.
var (
	// codePattern is deliberately open-ended on the right: RE2 has no
	// lookahead, so the length ceiling is enforced after matching.
	codePattern     = regexp.MustCompile(`(?i)barcode[\s:-]*([0-9]{8,})`)
	firstDigitRun   = regexp.MustCompile(`[0-9]+`)
	codeMinLen      = 8
	codeMaxLen      = 14
	bareCodePattern = regexp.MustCompile(`^[0-9]{8,14}$`)
)

// ExtractCode pulls an 8-14 digit identifying code out of free text.
// The second return value is false when no acceptable code is present;
// that is an expected outcome, not an error.
func ExtractCode(text string) (string, bool) {
	m := codePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	code := m[1]
	if len(code) < codeMinLen || len(code) > codeMaxLen {
		return "", false
	}
	return code, true
}

// IsBareCode reports whether s is nothing but an acceptable code.
func IsBareCode(s string) bool {
	return bareCodePattern.MatchString(s)
}

// ExtractQuantity pulls the first digit run out of a free-text quantity
// cell ("x3", "3 pcs"). Missing digits count as zero.
func ExtractQuantity(text string) int {
	m := firstDigitRun.FindString(text)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}
