package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// FederalTaxCalculator estimates a full federal liability: gross income, AGI,
// deduction selection, ordinary tax, stacked preferential-rate tax, NIIT, and
// self-employment tax, with optional state delegation.
type FederalTaxCalculator struct {
	Rules *domain.TaxRulesConfig
	State *StateTaxCalculator
}

// NewFederalTaxCalculator creates a federal calculator over a rules set.
func NewFederalTaxCalculator(rules *domain.TaxRulesConfig) *FederalTaxCalculator {
	return &FederalTaxCalculator{
		Rules: rules,
		State: NewStateTaxCalculator(rules),
	}
}

// selfEmploymentTax computes SE tax on business income: 92.35% of business
// income is SE-taxable; Social Security applies up to the wage base, Medicare
// on the full SE-taxable amount, and the additional Medicare rate above the
// status threshold.
func (fc *FederalTaxCalculator) selfEmploymentTax(businessIncome decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	if businessIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	se := fc.Rules.SelfEmployment
	base := ApplyRate(businessIncome, se.NetEarningsFactor)

	ssBase := decimal.Min(base, se.SocialSecurityWageBase)
	ssTax := ApplyRate(ssBase, se.SocialSecurityRate)
	medicareTax := ApplyRate(base, se.MedicareRate)

	additional := decimal.Zero
	threshold := se.AdditionalMedicareThresholds.ForStatus(status)
	if base.GreaterThan(threshold) {
		additional = ApplyRate(base.Sub(threshold), se.AdditionalMedicareRate)
	}
	return RoundToCents(SumAll(ssTax, medicareTax, additional))
}

// netInvestmentIncomeTax applies the 3.8% surtax to the lesser of investment
// income and the AGI excess over the status threshold.
func (fc *FederalTaxCalculator) netInvestmentIncomeTax(income domain.IncomeSummary, agi decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	threshold := fc.Rules.FederalTax.NIITThresholds.ForStatus(status)
	if agi.LessThanOrEqual(threshold) {
		return decimal.Zero
	}
	netGains := ClampMin(income.ShortTermGains.Add(income.LongTermGains), decimal.Zero)
	investment := SumAll(
		income.InterestIncome,
		income.OrdinaryDividends,
		netGains,
		ClampMin(income.RentalIncome, decimal.Zero),
	)
	base := decimal.Min(investment, agi.Sub(threshold))
	if base.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return RoundToCents(ApplyRate(base, fc.Rules.FederalTax.NIITRate))
}

// preferentialTax computes the stacked qualified-dividend and long-term-gains
// tax: capital-gains bracket tax on (ordinary + preferential) minus the same
// table's tax on ordinary alone, split proportionally between the two
// components. The split is guarded so neither share can go negative.
func (fc *FederalTaxCalculator) preferentialTax(taxableOrdinary, qualifiedDividends, longTermGains decimal.Decimal, status domain.FilingStatus) (qdiTax, ltcgTax decimal.Decimal) {
	gains := ClampMin(longTermGains, decimal.Zero)
	preferential := qualifiedDividends.Add(gains)
	if preferential.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero
	}

	brackets := fc.Rules.FederalTax.CapitalGainsBrackets.ForStatus(status)
	withPref := ApplyBrackets(taxableOrdinary.Add(preferential), brackets)
	withoutPref := ApplyBrackets(taxableOrdinary, brackets)
	total := ClampMin(withPref.Sub(withoutPref), decimal.Zero)

	qdiShare := qualifiedDividends.Div(preferential)
	qdiTax = RoundToCents(total.Mul(qdiShare))
	ltcgTax = RoundToCents(total.Sub(qdiTax))
	return qdiTax, ltcgTax
}

// EstimateLiability runs the full federal pipeline for one income summary. A
// non-empty state code delegates the state portion to the state calculator
// using (AGI - deduction used) as the taxable base.
func (fc *FederalTaxCalculator) EstimateLiability(year int, income domain.IncomeSummary, status domain.FilingStatus, state string) domain.TaxLiabilityResult {
	result := domain.TaxLiabilityResult{
		Year:         year,
		FilingStatus: status,
		State:        state,
	}

	gross := income.GrossIncome()
	result.GrossIncome = gross

	// SE tax feeds both the liability total and the AGI adjustment.
	seTax := fc.selfEmploymentTax(income.BusinessIncome, status)
	result.SelfEmploymentTax = seTax

	agi := gross
	if income.BusinessIncome.GreaterThan(decimal.Zero) {
		half := seTax.Div(decimal.NewFromInt(2))
		agi = gross.Sub(half)
		result.Notes = append(result.Notes, "AGI reduced by half of self-employment tax")
	}
	result.AdjustedGrossIncome = agi

	standard := fc.Rules.FederalTax.StandardDeduction.ForStatus(status)
	if income.Deductions.GreaterThan(standard) {
		result.DeductionUsed = income.Deductions
		result.DeductionType = domain.DeductionItemized
		result.Notes = append(result.Notes, "itemized deductions exceed the standard deduction")
	} else {
		result.DeductionUsed = standard
		result.DeductionType = domain.DeductionStandard
		result.Notes = append(result.Notes, fmt.Sprintf("standard deduction of %s applied", standard.StringFixed(0)))
	}

	taxableOrdinary := ClampMin(gross.Sub(income.QualifiedDividends).Sub(result.DeductionUsed), decimal.Zero)
	result.TaxableOrdinaryIncome = taxableOrdinary

	ordinaryBrackets := fc.Rules.FederalTax.OrdinaryBrackets.ForStatus(status)
	result.OrdinaryTax = RoundToWholeDollar(ApplyBrackets(taxableOrdinary, ordinaryBrackets))

	qdiTax, ltcgTax := fc.preferentialTax(taxableOrdinary, income.QualifiedDividends, income.LongTermGains, status)
	result.QualifiedDividendTax = qdiTax
	result.LongTermGainsTax = ltcgTax

	result.NetInvestmentTax = fc.netInvestmentIncomeTax(income, agi, status)
	if result.NetInvestmentTax.GreaterThan(decimal.Zero) {
		result.Notes = append(result.Notes, "net investment income tax applies above the AGI threshold")
	}

	result.FederalTax = SumAll(
		result.OrdinaryTax,
		result.QualifiedDividendTax,
		result.LongTermGainsTax,
		result.NetInvestmentTax,
		result.SelfEmploymentTax,
	)

	if state != "" {
		stateBase := ClampMin(agi.Sub(result.DeductionUsed), decimal.Zero)
		stateResult := fc.State.CalculateStateTax(state, stateBase, status)
		result.StateTax = stateResult.Tax
		result.Notes = append(result.Notes, stateResult.Notes...)
	}

	result.TotalTax = ClampMin(result.FederalTax.Add(result.StateTax).Sub(income.ForeignTaxCredit), decimal.Zero)
	if income.ForeignTaxCredit.GreaterThan(decimal.Zero) {
		result.Notes = append(result.Notes, "foreign tax credit applied against total tax")
	}

	result.Withholding = income.Withholding
	result.EstimatedPayments = income.EstimatedPayments
	result.BalanceDue = result.TotalTax.Sub(income.Withholding).Sub(income.EstimatedPayments)

	if gross.GreaterThan(decimal.Zero) {
		result.EffectiveRate = result.TotalTax.Div(gross).Round(6)
	}
	result.MarginalRate = MarginalRate(taxableOrdinary, ordinaryBrackets)
	return result
}
