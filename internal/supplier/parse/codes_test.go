package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "colon separator",
			text: "Velvet Lip Tint barcode: 8800123456789",
			want: "8800123456789",
			ok:   true,
		},
		{
			name: "hyphen separator",
			text: "Hydra Cream barcode - 88001234",
			want: "88001234",
			ok:   true,
		},
		{
			name: "whitespace separator upper case marker",
			text: "Cushion Refill BARCODE 8800123456",
			want: "8800123456",
			ok:   true,
		},
		{
			name: "marker glued to digits",
			text: "barcode8800123456",
			want: "8800123456",
			ok:   true,
		},
		{
			name: "too short",
			text: "Sample Pouch barcode: 123456",
			want: "",
			ok:   false,
		},
		{
			name: "too long",
			text: "Mystery Box barcode: 880012345678901",
			want: "",
			ok:   false,
		},
		{
			name: "digits without marker",
			text: "Toner 8800123456789",
			want: "",
			ok:   false,
		},
		{
			name: "empty input",
			text: "",
			want: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractCode(tt.text)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsBareCode(t *testing.T) {
	assert.True(t, IsBareCode("88001234"))
	assert.True(t, IsBareCode("88001234567890"))
	assert.False(t, IsBareCode("8800123"))
	assert.False(t, IsBareCode("880012345678901"))
	assert.False(t, IsBareCode("x8800123456789"))
	assert.False(t, IsBareCode(""))
}

func TestExtractQuantity(t *testing.T) {
	assert.Equal(t, 3, ExtractQuantity("x3"))
	assert.Equal(t, 12, ExtractQuantity("12 pcs"))
	assert.Equal(t, 0, ExtractQuantity("none"))
	assert.Equal(t, 0, ExtractQuantity(""))
}
