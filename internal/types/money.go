package types

import (
	"github.com/shopspring/decimal"
)

// ApplyDiscountFraction returns amount * (1 - fraction) in minor currency units,
// rounded half-up to the nearest unit and floored at zero. Monetary amounts are
// kept as integer minor units; decimal arithmetic only appears at the boundary
// so no float rounding error can leak into stored prices.
func ApplyDiscountFraction(amountMinorUnits int64, fraction decimal.Decimal) int64 {
	net := decimal.NewFromInt(amountMinorUnits).
		Mul(decimal.NewFromInt(1).Sub(fraction)).
		Round(0)

	if net.IsNegative() {
		return 0
	}
	return net.IntPart()
}

// IsValidDiscountFraction reports whether f lies in [0, 1).
func IsValidDiscountFraction(f decimal.Decimal) bool {
	return !f.IsNegative() && f.LessThan(decimal.NewFromInt(1))
}
