package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

func TestEstimateLiabilityWagesOnly(t *testing.T) {
	calc := NewFederalTaxCalculator(Rules2025())

	income := domain.IncomeSummary{Wages: decimal.NewFromInt(65000)}
	result := calc.EstimateLiability(2025, income, domain.FilingSingle, "")

	assert.True(t, result.GrossIncome.Equal(decimal.NewFromInt(65000)))
	assert.True(t, result.AdjustedGrossIncome.Equal(decimal.NewFromInt(65000)))
	assert.Equal(t, domain.DeductionStandard, result.DeductionType)
	assert.True(t, result.DeductionUsed.Equal(decimal.NewFromInt(15000)))
	assert.True(t, result.TaxableOrdinaryIncome.Equal(decimal.NewFromInt(50000)))
	assert.True(t, result.OrdinaryTax.Equal(decimal.NewFromInt(5914)),
		"ordinary tax: got %s", result.OrdinaryTax.String())
	assert.True(t, result.FederalTax.Equal(decimal.NewFromInt(5914)))
	assert.True(t, result.MarginalRate.Equal(decimal.NewFromFloat(0.22)))
	assert.True(t, result.StateTax.IsZero())
}

func TestEstimateLiabilityPreferentialStacking(t *testing.T) {
	calc := NewFederalTaxCalculator(Rules2025())

	income := domain.IncomeSummary{
		Wages:              decimal.NewFromInt(60000),
		OrdinaryDividends:  decimal.NewFromInt(5000),
		QualifiedDividends: decimal.NewFromInt(5000),
		LongTermGains:      decimal.NewFromInt(10000),
	}
	result := calc.EstimateLiability(2025, income, domain.FilingSingle, "")

	// Qualified dividends are carved out of ordinary income; long-term gains
	// plus qualified dividends stack on top for the capital-gains table.
	assert.True(t, result.GrossIncome.Equal(decimal.NewFromInt(75000)))
	assert.True(t, result.TaxableOrdinaryIncome.Equal(decimal.NewFromInt(55000)))
	assert.True(t, result.OrdinaryTax.Equal(decimal.NewFromInt(7014)),
		"ordinary tax: got %s", result.OrdinaryTax.String())

	// Stacked preferential tax: 15% bracket applies to (55k..70k) minus the
	// portion already above the 0% breakpoint at 48,350: 2,250 total, split
	// one third to dividends.
	assert.True(t, result.QualifiedDividendTax.Equal(decimal.NewFromInt(750)),
		"qdi tax: got %s", result.QualifiedDividendTax.String())
	assert.True(t, result.LongTermGainsTax.Equal(decimal.NewFromInt(1500)),
		"ltcg tax: got %s", result.LongTermGainsTax.String())
	assert.True(t, result.FederalTax.Equal(decimal.NewFromInt(9264)))
}

func TestEstimateLiabilityPreferentialGuards(t *testing.T) {
	calc := NewFederalTaxCalculator(Rules2025())

	t.Run("no preferential income", func(t *testing.T) {
		income := domain.IncomeSummary{Wages: decimal.NewFromInt(90000)}
		result := calc.EstimateLiability(2025, income, domain.FilingSingle, "")
		assert.True(t, result.QualifiedDividendTax.IsZero())
		assert.True(t, result.LongTermGainsTax.IsZero())
	})

	t.Run("long-term loss contributes nothing preferential", func(t *testing.T) {
		income := domain.IncomeSummary{
			Wages:         decimal.NewFromInt(90000),
			LongTermGains: decimal.NewFromInt(-20000),
		}
		result := calc.EstimateLiability(2025, income, domain.FilingSingle, "")
		assert.True(t, result.QualifiedDividendTax.IsZero())
		assert.True(t, result.LongTermGainsTax.IsZero())
	})
}

func TestEstimateLiabilitySelfEmployment(t *testing.T) {
	calc := NewFederalTaxCalculator(Rules2025())

	income := domain.IncomeSummary{BusinessIncome: decimal.NewFromInt(100000)}
	result := calc.EstimateLiability(2025, income, domain.FilingSingle, "")

	// 92.35% of 100k is SE-taxable: 12.4% SS + 2.9% Medicare.
	assert.True(t, result.SelfEmploymentTax.Equal(decimal.NewFromFloat(14129.55)),
		"se tax: got %s", result.SelfEmploymentTax.String())
	assert.True(t, result.AdjustedGrossIncome.Equal(decimal.NewFromFloat(92935.225)),
		"agi: got %s", result.AdjustedGrossIncome.String())
	assert.True(t, result.TaxableOrdinaryIncome.Equal(decimal.NewFromInt(85000)))
	assert.True(t, result.OrdinaryTax.Equal(decimal.NewFromInt(13614)))
	assert.True(t, result.FederalTax.Equal(decimal.NewFromFloat(27743.55)))
}

func TestSelfEmploymentAdditionalMedicare(t *testing.T) {
	calc := NewFederalTaxCalculator(Rules2025())

	// 300k business income: SE base 277,050 exceeds both the SS wage base and
	// the single additional-Medicare threshold.
	seTax := calc.selfEmploymentTax(decimal.NewFromInt(300000), domain.FilingSingle)

	ss := decimal.NewFromInt(176100).Mul(decimal.NewFromFloat(0.124))
	medicare := decimal.NewFromFloat(277050).Mul(decimal.NewFromFloat(0.029))
	additional := decimal.NewFromFloat(77050).Mul(decimal.NewFromFloat(0.009))
	expected := RoundToCents(ss.Add(medicare).Add(additional))
	assert.True(t, seTax.Equal(expected), "expected %s, got %s", expected.String(), seTax.String())
}

func TestEstimateLiabilityNIIT(t *testing.T) {
	calc := NewFederalTaxCalculator(Rules2025())

	t.Run("applies above threshold", func(t *testing.T) {
		income := domain.IncomeSummary{
			Wages:          decimal.NewFromInt(260000),
			InterestIncome: decimal.NewFromInt(20000),
		}
		result := calc.EstimateLiability(2025, income, domain.FilingMarriedFilingJointly, "")
		// AGI 280k exceeds the 250k MFJ threshold by 30k; investment income of
		// 20k is the smaller base.
		assert.True(t, result.NetInvestmentTax.Equal(decimal.NewFromInt(760)),
			"niit: got %s", result.NetInvestmentTax.String())
	})

	t.Run("zero at or below threshold", func(t *testing.T) {
		income := domain.IncomeSummary{
			Wages:          decimal.NewFromInt(180000),
			InterestIncome: decimal.NewFromInt(20000),
		}
		result := calc.EstimateLiability(2025, income, domain.FilingSingle, "")
		assert.True(t, result.NetInvestmentTax.IsZero())
	})
}

func TestEstimateLiabilityDeductionSelection(t *testing.T) {
	calc := NewFederalTaxCalculator(Rules2025())

	income := domain.IncomeSummary{
		Wages:      decimal.NewFromInt(100000),
		Deductions: decimal.NewFromInt(22000),
	}
	result := calc.EstimateLiability(2025, income, domain.FilingSingle, "")
	assert.Equal(t, domain.DeductionItemized, result.DeductionType)
	assert.True(t, result.DeductionUsed.Equal(decimal.NewFromInt(22000)))
	assert.True(t, result.TaxableOrdinaryIncome.Equal(decimal.NewFromInt(78000)))
}

func TestEstimateLiabilityStateAndCredits(t *testing.T) {
	calc := NewFederalTaxCalculator(Rules2025())

	income := domain.IncomeSummary{
		Wages:            decimal.NewFromInt(65000),
		Withholding:      decimal.NewFromInt(9000),
		ForeignTaxCredit: decimal.NewFromInt(100),
	}
	result := calc.EstimateLiability(2025, income, domain.FilingSingle, "CA")

	// State base is AGI minus the deduction used: 50,000 of CA taxable income.
	assert.True(t, result.StateTax.Equal(decimal.NewFromFloat(1623.02)),
		"state tax: got %s", result.StateTax.String())
	expectedTotal := decimal.NewFromInt(5914).Add(decimal.NewFromFloat(1623.02)).Sub(decimal.NewFromInt(100))
	assert.True(t, result.TotalTax.Equal(expectedTotal),
		"total tax: got %s", result.TotalTax.String())
	assert.True(t, result.BalanceDue.Equal(expectedTotal.Sub(decimal.NewFromInt(9000))))
}

func TestEstimateLiabilityRefund(t *testing.T) {
	calc := NewFederalTaxCalculator(Rules2025())

	income := domain.IncomeSummary{
		Wages:       decimal.NewFromInt(40000),
		Withholding: decimal.NewFromInt(6000),
	}
	result := calc.EstimateLiability(2025, income, domain.FilingSingle, "")
	assert.True(t, result.BalanceDue.IsNegative(), "expected refund, got %s", result.BalanceDue.String())
}

func TestEstimateLiabilityZeroIncome(t *testing.T) {
	calc := NewFederalTaxCalculator(Rules2025())

	result := calc.EstimateLiability(2025, domain.IncomeSummary{}, domain.FilingSingle, "")
	assert.True(t, result.TotalTax.IsZero())
	assert.True(t, result.EffectiveRate.IsZero())
	assert.True(t, result.MarginalRate.Equal(decimal.NewFromFloat(0.10)))
}
