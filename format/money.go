package format

import "github.com/shopspring/decimal"

// MinMoney and MaxMoney bound the monetary amounts spec.md §4.B recognizes.
var (
	MinMoney = decimal.Zero
	MaxMoney = decimal.RequireFromString("999999999999.99")
)

// MoneyInBounds reports whether v falls within [0, 999_999_999_999.99].
func MoneyInBounds(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(MinMoney) && v.LessThanOrEqual(MaxMoney)
}

// Round2 rounds v to two decimal places, half-up, as required of every
// total and price in the document model.
func Round2(v decimal.Decimal) decimal.Decimal {
	return v.RoundHalfUp(2)
}

// Round6 rounds v to six decimal places, half-up, as required of every
// quantity and unit price in the document model.
func Round6(v decimal.Decimal) decimal.Decimal {
	return v.RoundHalfUp(6)
}

// WithinTolerance reports whether a and b differ by no more than
// tolerance, in absolute value. Monetary comparisons must never use
// equality (spec.md §9).
func WithinTolerance(a, b, tolerance decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(tolerance)
}
