package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// StateTaxCalculator resolves a jurisdiction code to its regime and computes
// state income tax over a taxable base. Unsupported jurisdictions produce a
// zero result with a note, never an error.
type StateTaxCalculator struct {
	Rules *domain.TaxRulesConfig
}

// NewStateTaxCalculator creates a state tax calculator over a rules set.
func NewStateTaxCalculator(rules *domain.TaxRulesConfig) *StateTaxCalculator {
	return &StateTaxCalculator{Rules: rules}
}

// CalculateStateTax dispatches on the jurisdiction's regime. The code is
// case-insensitive. Income at or below zero short-circuits to a zero result.
func (sc *StateTaxCalculator) CalculateStateTax(state string, taxableIncome decimal.Decimal, status domain.FilingStatus) domain.StateTaxResult {
	code := strings.ToUpper(strings.TrimSpace(state))
	result := domain.StateTaxResult{
		State:         code,
		FilingStatus:  status,
		TaxableIncome: taxableIncome,
		Tax:           decimal.Zero,
		EffectiveRate: decimal.Zero,
		MarginalRate:  decimal.Zero,
	}

	rules, known := sc.Rules.States[code]
	if !known {
		result.Regime = domain.RegimeUnsupported
		result.Notes = append(result.Notes, "state '"+code+"' is not supported; no state tax computed")
		return result
	}
	result.Regime = rules.Regime
	result.Notes = append(result.Notes, rules.Notes...)

	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return result
	}

	switch rules.Regime {
	case domain.RegimeNoTax:
		result.Notes = append(result.Notes, rules.Name+" has no state income tax")

	case domain.RegimeFlat:
		result.Tax = RoundToCents(ApplyRate(taxableIncome, rules.Rate))
		result.MarginalRate = rules.Rate
		result.Brackets = []domain.TaxBracket{{Min: decimal.Zero, Rate: rules.Rate}}

	case domain.RegimeFlatSurtax:
		tax := ApplyRate(taxableIncome, rules.Rate)
		marginal := rules.Rate
		if taxableIncome.GreaterThan(rules.SurtaxThreshold) {
			excess := taxableIncome.Sub(rules.SurtaxThreshold)
			tax = tax.Add(ApplyRate(excess, rules.SurtaxRate))
			marginal = rules.Rate.Add(rules.SurtaxRate)
		}
		result.Tax = RoundToCents(tax)
		result.MarginalRate = marginal
		threshold := rules.SurtaxThreshold
		result.Brackets = []domain.TaxBracket{
			{Min: decimal.Zero, Max: &threshold, Rate: rules.Rate},
			{Min: rules.SurtaxThreshold, Rate: rules.Rate.Add(rules.SurtaxRate)},
		}

	case domain.RegimeProgressive:
		brackets := rules.Brackets.ForStatus(status)
		result.Tax = ApplyBrackets(taxableIncome, brackets)
		result.MarginalRate = MarginalRate(taxableIncome, brackets)
		result.Brackets = brackets
	}

	if taxableIncome.GreaterThan(decimal.Zero) && result.Tax.GreaterThan(decimal.Zero) {
		result.EffectiveRate = result.Tax.Div(taxableIncome).Round(6)
	}
	return result
}
