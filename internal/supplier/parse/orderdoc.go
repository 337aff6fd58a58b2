package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"goshopops_api/internal/supplier/models"
	"goshopops_api/pkg/business/service"

	"github.com/shopspring/decimal"
)

// DefaultSampleToken stands in for the code on promotional sample lines.
const DefaultSampleToken = "SAMPLE"

// orderLineShape is the canonical line-item shape after whitespace and
// dash normalization:
//
//	<idx> (<code>) <name> <unit> <qty> <unit_price> <line_value> <tax>
//
// The name group is non-greedy so a trailing unit token is never eaten.
const orderLineShape = `^(\d+) \((%s)\) (.+?) (pcs|set|box|ea) (\d+) (\d+(?:[.,]\d+)?) (\d+(?:[.,]\d+)?) (\d+(?:[.,]\d+)?)$`

// OrderDocumentParser turns a semi-structured supplier order document
// into canonical order lines. Lines that do not match the expected
// shape are skipped on purpose: real exports carry headers, totals and
// decorative rulers that are not line items.
type OrderDocumentParser struct {
	sampleToken    string
	includeSamples bool
	defaultVendor  string
	linePattern    *regexp.Regexp
	text           *service.TextService
}

func NewOrderDocumentParser(sampleToken, defaultVendor string, includeSamples bool) *OrderDocumentParser {
	if sampleToken == "" {
		sampleToken = DefaultSampleToken
	}
	codeGroup := fmt.Sprintf(`[0-9]{8,14}|(?i:%s)`, regexp.QuoteMeta(sampleToken))
	return &OrderDocumentParser{
		sampleToken:    sampleToken,
		includeSamples: includeSamples,
		defaultVendor:  defaultVendor,
		linePattern:    regexp.MustCompile(fmt.Sprintf(orderLineShape, codeGroup)),
		text:           service.NewTextService(),
	}
}

// Parse scans the whole document. Every match is independent, so a
// malformed line never poisons the ones after it. An empty result means
// nothing parsed, not an unreadable file. The second return value counts
// non-empty lines that do not match the line-item shape, for
// operator-facing row-count audits; filtered sample lines do not count.
func (p *OrderDocumentParser) Parse(document string) ([]models.OrderLine, int) {
	var lines []models.OrderLine
	skipped := 0
	for _, raw := range strings.Split(document, "\n") {
		line, ok := p.parseLine(raw)
		if !ok {
			if strings.TrimSpace(raw) != "" {
				skipped++
			}
			continue
		}
		if p.isSample(line.Code) {
			if !p.includeSamples {
				continue
			}
			line.Code = p.sampleToken
		}
		lines = append(lines, line)
	}
	return lines, skipped
}

func (p *OrderDocumentParser) parseLine(raw string) (models.OrderLine, bool) {
	normalized := p.text.CollapseWhitespace(p.text.NormalizeDashes(raw))
	m := p.linePattern.FindStringSubmatch(normalized)
	if m == nil {
		return models.OrderLine{}, false
	}

	name := strings.Trim(m[3], " -")
	qty, err := strconv.Atoi(m[5])
	if err != nil {
		qty = 0
	}

	decomposed := DecomposeName(name, p.defaultVendor)
	return models.OrderLine{
		Code:      m[2],
		RawName:   name,
		Vendor:    decomposed.Vendor,
		Title:     decomposed.Title,
		Size:      decomposed.Size,
		Unit:      m[4],
		Quantity:  qty,
		UnitPrice: p.parseDecimal(m[6]),
		LineValue: p.parseDecimal(m[7]),
		TaxAmount: p.parseDecimal(m[8]),
	}, true
}

func (p *OrderDocumentParser) isSample(code string) bool {
	return strings.EqualFold(code, p.sampleToken)
}

// parseDecimal converts a price token, treating malformed input as an
// absent value rather than failing the whole row.
func (p *OrderDocumentParser) parseDecimal(token string) *decimal.Decimal {
	d, err := decimal.NewFromString(p.text.NormalizeDecimal(token))
	if err != nil {
		return nil
	}
	d = d.Round(2)
	return &d
}
