package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoftTitle(t *testing.T) {
	ts := NewTextService()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain words", "velvet lip tint", "Velvet Lip Tint"},
		{"short acronym kept", "hydra cream SPF", "Hydra Cream SPF"},
		{"long all caps not an acronym", "VELVET tint", "VELVET Tint"},
		{"connector lowered in the middle", "eau de parfum", "Eau de Parfum"},
		{"connector capitalized at the edges", "the one and only the", "The One and Only The"},
		{"mixed case body untouched", "McQueen iPhone case", "McQueen IPhone Case"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ts.SoftTitle(tt.input))
		})
	}
}

func TestNormalizeDashes(t *testing.T) {
	ts := NewTextService()
	assert.Equal(t, "a - b - c", ts.NormalizeDashes("a – b — c"))
	assert.Equal(t, "plain - dash", ts.NormalizeDashes("plain - dash"))
}

func TestCollapseWhitespace(t *testing.T) {
	ts := NewTextService()
	assert.Equal(t, "a b c", ts.CollapseWhitespace("  a \t b\n\nc  "))
	assert.Equal(t, "", ts.CollapseWhitespace(" \t "))
}

func TestNormalizeDecimal(t *testing.T) {
	ts := NewTextService()
	assert.Equal(t, "12.50", ts.NormalizeDecimal("12,50"))
	assert.Equal(t, "12.50", ts.NormalizeDecimal("12.50"))
}
