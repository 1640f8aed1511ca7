package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		exponent int32
		want     string
	}{
		{"two digits", 12345, 2, "123.45"},
		{"pads fraction", 100, 2, "1.00"},
		{"below one", 5, 2, "0.05"},
		{"negative", -5, 2, "-0.05"},
		{"zero", 0, 2, "0.00"},
		{"no fraction", 700, 0, "700"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinorUnits(tt.amount, tt.exponent))
		})
	}
}

func TestParseMinorUnits(t *testing.T) {
	got, err := ParseMinorUnits("123.45", DefaultMinorUnitExponent)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), got)

	got, err = ParseMinorUnits("1.005", DefaultMinorUnitExponent)
	require.NoError(t, err)
	assert.Equal(t, int64(101), got)

	got, err = ParseMinorUnits("-3", DefaultMinorUnitExponent)
	require.NoError(t, err)
	assert.Equal(t, int64(-300), got)

	_, err = ParseMinorUnits("twelve", DefaultMinorUnitExponent)
	assert.Error(t, err)
}
