// Package labels assembles the text content of printable labels.
// Layout and rendering (PDF, Word) live outside this repository; only
// the field assembly carries logic worth keeping close to the catalog.
package labels

import (
	"fmt"
	"strings"

	"goshopops_api/config/values"
	"goshopops_api/internal/supplier/models"
)

const precautionText = "Avertissement! Usage externe uniquement. Éviter tout contact avec les yeux. " +
	"Tenir hors de portée des enfants. En cas d'apparition de rougeurs, de gonflements ou de " +
	"démangeaisons pendant ou après l'utilisation, consultez un médecin. " +
	"A consommer de préférence avant le / Numéro de lot : indiqué sur l'emballage."

// DisplayLabel is the selector line an operator picks products by:
// "Vendor - Title (size)". The size is dropped when absent.
func DisplayLabel(rec models.CatalogRecord) string {
	label := rec.Vendor + " - " + rec.Title
	if size := strings.TrimSpace(rec.Custom["taille"]); size != "" {
		label += fmt.Sprintf(" (%s)", size)
	}
	return label
}

// TranslationBlock is the full text of a translation sticker for one
// product, one field per line. Empty fields are omitted except the
// mandatory warning and maker blocks.
func TranslationBlock(rec models.CatalogRecord, labelValues values.LabelValues) string {
	var b strings.Builder

	b.WriteString(rec.Vendor + "\n")
	b.WriteString(rec.Title + "\n")

	writeField(&b, "Contenance", rec.Custom["taille"])
	writeField(&b, "Barcode", rec.VariantBarcode)
	writeField(&b, "Mode d'emploi", rec.Custom["utilisation"])
	writeField(&b, "Ingrédients", rec.Custom["ingredients"])

	b.WriteString(precautionText + "\n")

	writeField(&b, "Fabricant", rec.Vendor)
	writeField(&b, "EU RP", labelValues.EURepresentative)
	if labelValues.CountryOfOrigin != "" {
		b.WriteString("Fabriqué en " + labelValues.CountryOfOrigin + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeField(b *strings.Builder, name, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	b.WriteString(name + " : " + value + "\n")
}
