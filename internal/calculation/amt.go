package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// AMTCalculator runs the parallel minimum-tax computation: AMTI assembly,
// exemption phaseout, the two-tier 26/28% rate, and comparison against
// regular tax.
type AMTCalculator struct {
	Rules *domain.TaxRulesConfig
}

// NewAMTCalculator creates an AMT calculator over a rules set.
func NewAMTCalculator(rules *domain.TaxRulesConfig) *AMTCalculator {
	return &AMTCalculator{Rules: rules}
}

// CalculateAMT computes the final AMT for one input. The result's AMT is
// clamped at zero; IsSubjectToAMT reports whether any AMT is owed on top of
// regular tax.
func (ac *AMTCalculator) CalculateAMT(input domain.AmtInput) domain.AmtResult {
	rules := ac.Rules.AMT

	amti := SumAll(
		input.TaxableIncome,
		input.SALTDeduction,
		input.PrivateActivityBondInterest,
		input.ISOBargainElement,
		input.OtherAdjustments,
	)

	exemption := rules.Exemption.ForStatus(input.FilingStatus)
	reduced := exemption
	phaseoutStart := rules.PhaseoutThreshold.ForStatus(input.FilingStatus)
	if amti.GreaterThan(phaseoutStart) {
		reduction := ApplyRate(amti.Sub(phaseoutStart), rules.PhaseoutRate)
		reduced = ClampMin(exemption.Sub(reduction), decimal.Zero)
	}

	base := ClampMin(amti.Sub(reduced), decimal.Zero)

	// 26% up to the rate threshold, 28% on the excess.
	rateThreshold := rules.HighRateThresholds.ForStatus(input.FilingStatus)
	var tentative decimal.Decimal
	if base.GreaterThan(rateThreshold) {
		tentative = ApplyRate(rateThreshold, rules.LowRate).
			Add(ApplyRate(base.Sub(rateThreshold), rules.HighRate))
	} else {
		tentative = ApplyRate(base, rules.LowRate)
	}
	tentative = RoundToCents(tentative)

	amt := ClampMin(tentative.Sub(input.RegularTax), decimal.Zero)

	return domain.AmtResult{
		AMTI:                amti,
		ExemptionAmount:     exemption,
		ReducedExemption:    reduced,
		AMTBase:             base,
		TentativeMinimumTax: tentative,
		AMT:                 amt,
		IsSubjectToAMT:      amt.GreaterThan(decimal.Zero),
	}
}
