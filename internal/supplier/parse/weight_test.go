package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeight(t *testing.T) {
	tests := []struct {
		input string
		grams float64
		ok    bool
	}{
		{"208g", 208, true},
		{"0.2 kg", 200, true},
		{"0,5kg", 500, true},
		{"7 oz", 198.4465, true},
		{"1 lb", 453.592, true},
		{"heavy", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			grams, ok := ParseWeight(tt.input)
			require.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.grams, grams, 0.0001)
		})
	}
}
