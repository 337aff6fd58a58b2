package labels

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goshopops_api/config/values"
	"goshopops_api/internal/supplier/models"
)

func TestDisplayLabel(t *testing.T) {
	rec := models.CatalogRecord{
		Vendor: "Secret Muse",
		Title:  "Velvet Lip Tint",
		Custom: map[string]string{"taille": "4 g"},
	}
	assert.Equal(t, "Secret Muse - Velvet Lip Tint (4 g)", DisplayLabel(rec))

	rec.Custom = nil
	assert.Equal(t, "Secret Muse - Velvet Lip Tint", DisplayLabel(rec))
}

func TestTranslationBlock(t *testing.T) {
	rec := models.CatalogRecord{
		Vendor:         "Secret Muse",
		Title:          "Velvet Lip Tint",
		VariantBarcode: "8800123456789",
		Custom: map[string]string{
			"taille":      "4 g",
			"ingredients": "Aqua, Glycerin",
		},
	}
	lv := values.LabelValues{
		EURepresentative: "Example SARL, 1 rue de la Paix, Paris",
		CountryOfOrigin:  "Corée du Sud",
	}

	block := TranslationBlock(rec, lv)
	lines := strings.Split(block, "\n")

	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "Secret Muse", lines[0])
	assert.Equal(t, "Velvet Lip Tint", lines[1])

	assert.Contains(t, block, "Contenance : 4 g")
	assert.Contains(t, block, "Barcode : 8800123456789")
	assert.Contains(t, block, "Ingrédients : Aqua, Glycerin")
	assert.Contains(t, block, "Avertissement!")
	assert.Contains(t, block, "EU RP : Example SARL, 1 rue de la Paix, Paris")
	assert.Contains(t, block, "Fabriqué en Corée du Sud")

	// the empty usage field is omitted entirely
	assert.NotContains(t, block, "Mode d'emploi")
	assert.False(t, strings.HasSuffix(block, "\n"))
}

func TestTranslationBlockMinimalRecord(t *testing.T) {
	block := TranslationBlock(models.CatalogRecord{
		Vendor: "Secret Muse",
		Title:  "Velvet Lip Tint",
	}, values.LabelValues{})

	assert.Contains(t, block, "Avertissement!")
	assert.NotContains(t, block, "EU RP")
	assert.NotContains(t, block, "Fabriqué en")
}
