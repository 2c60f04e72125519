package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// ApplyBrackets walks an ordered bracket table and taxes the portion of income
// falling in each bracket at that bracket's rate. Negative income is clamped
// to zero, so tax(0) = 0 and the result is non-decreasing in income. The
// result is rounded to cents; consumers that report whole-dollar figures round
// again at their boundary.
func ApplyBrackets(income decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	income = ClampMin(income, decimal.Zero)
	if income.IsZero() || len(brackets) == 0 {
		return decimal.Zero
	}

	tax := decimal.Zero
	for _, bracket := range brackets {
		if income.LessThanOrEqual(bracket.Min) {
			break
		}
		top := income
		if bracket.Bounded() && bracket.Max.LessThan(top) {
			top = *bracket.Max
		}
		inBracket := top.Sub(bracket.Min)
		if inBracket.GreaterThan(decimal.Zero) {
			tax = tax.Add(ApplyRate(inBracket, bracket.Rate))
		}
	}
	return RoundToCents(tax)
}

// MarginalRate returns the rate of the highest bracket whose lower bound is
// below the income. At or below zero income it reports the first bracket's
// rate.
func MarginalRate(income decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	if len(brackets) == 0 {
		return decimal.Zero
	}
	rate := brackets[0].Rate
	if income.LessThanOrEqual(decimal.Zero) {
		return rate
	}
	for _, bracket := range brackets {
		if bracket.Min.LessThan(income) {
			rate = bracket.Rate
		} else {
			break
		}
	}
	return rate
}
