package utils

import (
	"github.com/shopspring/decimal"
)

// DefaultMinorUnitExponent is the number of minor-unit digits assumed for a
// currency when none is known. RUB, USD and EUR all use two.
const DefaultMinorUnitExponent int32 = 2

// MinorUnitsToDecimal converts an amount stored in minor units into its
// decimal value in major units.
// Example: 12345 with exponent 2 returns 123.45
func MinorUnitsToDecimal(amount int64, exponent int32) decimal.Decimal {
	return decimal.New(amount, -exponent)
}

// FormatMinorUnits renders an amount stored in minor units with exactly
// exponent fractional digits.
// Example: 12345 with exponent 2 returns "123.45"
// Example: -5 with exponent 2 returns "-0.05"
// Example: 700 with exponent 0 returns "700"
func FormatMinorUnits(amount int64, exponent int32) string {
	return MinorUnitsToDecimal(amount, exponent).StringFixed(exponent)
}

// ParseMinorUnits is the inverse of FormatMinorUnits. Digits beyond exponent
// are rounded half away from zero.
func ParseMinorUnits(s string, exponent int32) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.Shift(exponent).Round(0).IntPart(), nil
}
