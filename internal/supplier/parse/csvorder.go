package parse

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"goshopops_api/internal/supplier/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// CSVColumns names the supplier CSV columns of interest. Only Name is
// mandatory; the rest degrade to absent values when missing.
type CSVColumns struct {
	Name   string
	Qty    string
	Price  string
	Weight string
}

func DefaultCSVColumns() CSVColumns {
	return CSVColumns{
		Name:   "Product Name",
		Qty:    "Qty",
		Price:  "Retail Price",
		Weight: "Weight",
	}
}

// CSVOrderLine carries the per-row weight next to the canonical line;
// weight never travels on the text-order path.
type CSVOrderLine struct {
	models.OrderLine
	WeightGrams float64
}

// CSVOrderParser reads a structured supplier order export. Rows without
// a product name are skipped silently, matching the tolerance policy of
// the text parser.
type CSVOrderParser struct {
	columns       CSVColumns
	encoding      string
	defaultVendor string
	defaultWeight float64
}

func NewCSVOrderParser(columns CSVColumns, encoding, defaultVendor string, defaultWeight float64) *CSVOrderParser {
	if columns.Name == "" {
		columns = DefaultCSVColumns()
	}
	return &CSVOrderParser{
		columns:       columns,
		encoding:      encoding,
		defaultVendor: defaultVendor,
		defaultWeight: defaultWeight,
	}
}

var numericToken = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

func (p *CSVOrderParser) Parse(reader io.Reader) ([]CSVOrderLine, error) {
	if p.encoding == "windows-1251" {
		reader = transform.NewReader(reader, charmap.Windows1251.NewDecoder())
	}

	csvReader := csv.NewReader(reader)
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read error: %w", err)
	}
	if len(allRows) == 0 {
		return nil, fmt.Errorf("csv data is empty")
	}

	columnMap := make(map[string]int)
	for i, col := range allRows[0] {
		columnMap[strings.TrimSpace(col)] = i
	}
	if _, ok := columnMap[p.columns.Name]; !ok {
		return nil, fmt.Errorf("csv is missing the %q column", p.columns.Name)
	}

	var lines []CSVOrderLine
	for _, row := range allRows[1:] {
		name := strings.TrimSpace(cell(row, columnMap, p.columns.Name))
		if name == "" {
			continue
		}

		code, _ := ExtractCode(name)
		decomposed := DecomposeName(name, p.defaultVendor)

		weight := p.defaultWeight
		if grams, ok := ParseWeight(cell(row, columnMap, p.columns.Weight)); ok {
			weight = grams
		}

		lines = append(lines, CSVOrderLine{
			OrderLine: models.OrderLine{
				Code:      code,
				RawName:   name,
				Vendor:    decomposed.Vendor,
				Title:     decomposed.Title,
				Size:      decomposed.Size,
				Quantity:  ExtractQuantity(cell(row, columnMap, p.columns.Qty)),
				UnitPrice: parseCostCell(cell(row, columnMap, p.columns.Price)),
			},
			WeightGrams: weight,
		})
	}
	return lines, nil
}

func cell(row []string, columnMap map[string]int, name string) string {
	idx, ok := columnMap[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseCostCell reads a retail-price cell that may stack several
// currency lines. With two numeric lines the second is the USD cost;
// with one, that line is the cost; anything else is absent.
func parseCostCell(raw string) *decimal.Decimal {
	var numbers []string
	for _, line := range strings.Split(raw, "\n") {
		if token := numericToken.FindString(line); token != "" {
			numbers = append(numbers, strings.Replace(token, ",", ".", 1))
		}
	}

	var chosen string
	switch {
	case len(numbers) >= 2:
		chosen = numbers[1]
	case len(numbers) == 1:
		chosen = numbers[0]
	default:
		return nil
	}

	d, err := decimal.NewFromString(chosen)
	if err != nil {
		return nil
	}
	d = d.Round(2)
	return &d
}
