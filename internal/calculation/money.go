package calculation

import (
	"github.com/shopspring/decimal"
)

// Money helpers shared by every calculator. shopspring/decimal keeps chained
// operations exact; these wrappers pin down the rounding discipline so every
// component rounds the same way.

// ApplyRate multiplies an amount by a rate without rounding. Callers round at
// the boundary they report.
func ApplyRate(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate)
}

// ClampMin floors a value at the given minimum.
func ClampMin(value, floor decimal.Decimal) decimal.Decimal {
	if value.LessThan(floor) {
		return floor
	}
	return value
}

// SumAll adds a series of amounts.
func SumAll(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// RoundToCents rounds half-up to two decimal places.
func RoundToCents(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}

// RoundToWholeDollar rounds half-up to the nearest dollar.
func RoundToWholeDollar(value decimal.Decimal) decimal.Decimal {
	return value.Round(0)
}
