package values

type Config interface {
}

// OperatorDefaults are the values an operator can override per run but
// rarely changes between supplier orders.
type OperatorDefaults struct {
	Vendor         string  `yaml:"vendor"`
	ProductType    string  `yaml:"product-type"`
	WeightGrams    float64 `yaml:"weight-grams"`
	FxRate         float64 `yaml:"fx-rate"`
	Markup         float64 `yaml:"markup"`
	RoundingMode   string  `yaml:"rounding-mode"`
	IncludeSamples bool    `yaml:"include-samples"`
	SampleToken    string  `yaml:"sample-token"`
}

// LabelValues carries the fixed text blocks printed on translation stickers.
type LabelValues struct {
	EURepresentative string `yaml:"eu-representative"`
	CountryOfOrigin  string `yaml:"country-of-origin"`
}
