package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// ScheduleDCalculator nets short- and long-term capital gain/loss, applies
// the capital-loss deduction cap, and computes character-preserving carryover.
type ScheduleDCalculator struct {
	Rules *domain.TaxRulesConfig
}

// NewScheduleDCalculator creates a Schedule D calculator over a rules set.
func NewScheduleDCalculator(rules *domain.TaxRulesConfig) *ScheduleDCalculator {
	return &ScheduleDCalculator{Rules: rules}
}

// NetCapitalGains performs the netting. When the combined total is a loss,
// the deduction is capped per filing status and allocated to the short-term
// side first, then long-term; only negative remainders carry forward, with
// character preserved. A side that nets positive first offsets the other
// side's loss, so deduction plus carryover always accounts for the full net
// loss.
func (sc *ScheduleDCalculator) NetCapitalGains(input domain.ScheduleDInput) domain.ScheduleDResult {
	netShort := input.ShortTermGainLoss.Add(input.ShortTermCarryoverIn)
	netLong := input.LongTermGainLoss.
		Add(input.LongTermCarryoverIn).
		Add(input.CapitalGainDistributions)
	netTotal := netShort.Add(netLong)

	result := domain.ScheduleDResult{
		NetShortTerm:                  netShort,
		NetLongTerm:                   netLong,
		NetTotal:                      netTotal,
		CapitalLossDeduction:          decimal.Zero,
		CarryoverOutShortTerm:         decimal.Zero,
		CarryoverOutLongTerm:          decimal.Zero,
		QualifiesForPreferentialRates: netLong.GreaterThan(decimal.Zero),
	}
	if netTotal.GreaterThanOrEqual(decimal.Zero) {
		return result
	}

	cap := sc.Rules.CapitalLoss.DeductionCap.ForStatus(input.FilingStatus)
	result.CapitalLossDeduction = decimal.Min(netTotal.Abs(), cap)

	// Cross-character netting: a positive side absorbs the other side's loss
	// before any deduction is allocated, so remainders sum to the net total.
	shortRemainder, longRemainder := netShort, netLong
	if shortRemainder.IsNegative() && longRemainder.IsPositive() {
		offset := decimal.Min(shortRemainder.Neg(), longRemainder)
		shortRemainder = shortRemainder.Add(offset)
		longRemainder = longRemainder.Sub(offset)
	} else if longRemainder.IsNegative() && shortRemainder.IsPositive() {
		offset := decimal.Min(longRemainder.Neg(), shortRemainder)
		longRemainder = longRemainder.Add(offset)
		shortRemainder = shortRemainder.Sub(offset)
	}

	// Deduction applies short-term first, then long-term.
	deduction := result.CapitalLossDeduction
	if shortRemainder.IsNegative() {
		absorbed := decimal.Min(shortRemainder.Neg(), deduction)
		shortRemainder = shortRemainder.Add(absorbed)
		deduction = deduction.Sub(absorbed)
	}
	if longRemainder.IsNegative() {
		absorbed := decimal.Min(longRemainder.Neg(), deduction)
		longRemainder = longRemainder.Add(absorbed)
	}

	if shortRemainder.IsNegative() {
		result.CarryoverOutShortTerm = shortRemainder
	}
	if longRemainder.IsNegative() {
		result.CarryoverOutLongTerm = longRemainder
	}
	return result
}
