package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"goshopops_api/internal/supplier/models"
)

func TestDecomposeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback string
		want     models.DecomposedName
	}{
		{
			name:     "vendor split with trailing size",
			input:    "Secret Muse - Velvet Lip Tint 4 g",
			fallback: "House Brand",
			want: models.DecomposedName{
				Vendor: "Secret Muse",
				Title:  "Velvet Lip Tint",
				Size:   "4 g",
			},
		},
		{
			name:     "no vendor segment falls back",
			input:    "Velvet Lip Tint 100 ml",
			fallback: "House Brand",
			want: models.DecomposedName{
				Vendor: "House Brand",
				Title:  "Velvet Lip Tint",
				Size:   "100 ml",
			},
		},
		{
			name:     "left segment too long for a brand",
			input:    "An Exceptionally Long Descriptor Here - Toner",
			fallback: "House Brand",
			want: models.DecomposedName{
				Vendor: "House Brand",
				Title:  "An Exceptionally Long Descriptor Here - Toner",
				Size:   "",
			},
		},
		{
			name:     "embedded size is reported but not stripped",
			input:    "Essence 100ml Toner",
			fallback: "House Brand",
			want: models.DecomposedName{
				Vendor: "House Brand",
				Title:  "Essence 100ml Toner",
				Size:   "100 ml",
			},
		},
		{
			name:     "last size token wins",
			input:    "Duo 30 ml Serum 50 ml",
			fallback: "House Brand",
			want: models.DecomposedName{
				Vendor: "House Brand",
				Title:  "Duo 30 Ml Serum",
				Size:   "50 ml",
			},
		},
		{
			name:     "comma decimal in size",
			input:    "Cleansing Water 1,5 l",
			fallback: "House Brand",
			want: models.DecomposedName{
				Vendor: "House Brand",
				Title:  "Cleansing Water",
				Size:   "1.5 l",
			},
		},
		{
			name:     "acronym and connectors in soft casing",
			input:    "eau de parfum SPF 50 ml",
			fallback: "House Brand",
			want: models.DecomposedName{
				Vendor: "House Brand",
				Title:  "Eau de Parfum SPF",
				Size:   "50 ml",
			},
		},
		{
			name:     "empty input",
			input:    "   ",
			fallback: "House Brand",
			want:     models.DecomposedName{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecomposeName(tt.input, tt.fallback))
		})
	}
}
