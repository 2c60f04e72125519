package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

func TestCalculateAMTWithISOExercise(t *testing.T) {
	calc := NewAMTCalculator(Rules2025())

	result := calc.CalculateAMT(domain.AmtInput{
		Year:              2025,
		FilingStatus:      domain.FilingSingle,
		TaxableIncome:     decimal.NewFromInt(200000),
		ISOBargainElement: decimal.NewFromInt(300000),
		RegularTax:        decimal.NewFromInt(35000),
	})

	assert.True(t, result.AMTI.Equal(decimal.NewFromInt(500000)))
	// AMTI is below the phaseout threshold, so the full exemption survives.
	assert.True(t, result.ReducedExemption.Equal(decimal.NewFromInt(88100)))
	assert.True(t, result.AMTBase.Equal(decimal.NewFromInt(411900)))
	// 26% to the 248,300 breakpoint, 28% on the rest.
	assert.True(t, result.TentativeMinimumTax.Equal(decimal.NewFromInt(110366)),
		"tmt: got %s", result.TentativeMinimumTax.String())
	assert.True(t, result.AMT.Equal(decimal.NewFromInt(75366)),
		"amt: got %s", result.AMT.String())
	assert.True(t, result.IsSubjectToAMT)
}

func TestCalculateAMTNotSubject(t *testing.T) {
	calc := NewAMTCalculator(Rules2025())

	result := calc.CalculateAMT(domain.AmtInput{
		Year:          2025,
		FilingStatus:  domain.FilingSingle,
		TaxableIncome: decimal.NewFromInt(100000),
		RegularTax:    decimal.NewFromInt(17000),
	})

	// Base of 11,900 at 26% is well under the regular tax.
	assert.True(t, result.TentativeMinimumTax.Equal(decimal.NewFromInt(3094)))
	assert.True(t, result.AMT.IsZero())
	assert.False(t, result.IsSubjectToAMT)
}

func TestCalculateAMTExemptionPhaseout(t *testing.T) {
	calc := NewAMTCalculator(Rules2025())

	t.Run("partial phaseout", func(t *testing.T) {
		result := calc.CalculateAMT(domain.AmtInput{
			Year:          2025,
			FilingStatus:  domain.FilingSingle,
			TaxableIncome: decimal.NewFromInt(700000),
		})
		// Exemption shrinks by 25% of the 73,650 excess over 626,350.
		expected := decimal.NewFromInt(88100).Sub(decimal.NewFromFloat(18412.50))
		assert.True(t, result.ReducedExemption.Equal(expected),
			"expected %s, got %s", expected.String(), result.ReducedExemption.String())
	})

	t.Run("full phaseout floors at zero", func(t *testing.T) {
		result := calc.CalculateAMT(domain.AmtInput{
			Year:          2025,
			FilingStatus:  domain.FilingSingle,
			TaxableIncome: decimal.NewFromInt(1000000),
		})
		assert.True(t, result.ReducedExemption.IsZero())
		assert.True(t, result.AMTBase.Equal(decimal.NewFromInt(1000000)))
		expected := decimal.NewFromInt(248300).Mul(decimal.NewFromFloat(0.26)).
			Add(decimal.NewFromInt(751700).Mul(decimal.NewFromFloat(0.28)))
		assert.True(t, result.TentativeMinimumTax.Equal(RoundToCents(expected)))
	})
}

func TestCalculateAMTMarriedSeparatelyThreshold(t *testing.T) {
	calc := NewAMTCalculator(Rules2025())

	// MFS carries its own half-sized 124,150 rate breakpoint, not a shared
	// table scaled at lookup time.
	result := calc.CalculateAMT(domain.AmtInput{
		Year:              2025,
		FilingStatus:      domain.FilingMarriedFilingSeparately,
		TaxableIncome:     decimal.NewFromInt(200000),
		ISOBargainElement: decimal.NewFromInt(100000),
		RegularTax:        decimal.NewFromInt(30000),
	})

	assert.True(t, result.AMTI.Equal(decimal.NewFromInt(300000)))
	assert.True(t, result.ReducedExemption.Equal(decimal.NewFromInt(68500)))
	assert.True(t, result.AMTBase.Equal(decimal.NewFromInt(231500)))
	expected := decimal.NewFromInt(124150).Mul(decimal.NewFromFloat(0.26)).
		Add(decimal.NewFromInt(107350).Mul(decimal.NewFromFloat(0.28)))
	assert.True(t, result.TentativeMinimumTax.Equal(RoundToCents(expected)),
		"tmt: got %s", result.TentativeMinimumTax.String())
}

func TestCalculateAMTAddBacks(t *testing.T) {
	calc := NewAMTCalculator(Rules2025())

	result := calc.CalculateAMT(domain.AmtInput{
		Year:                        2025,
		FilingStatus:                domain.FilingMarriedFilingJointly,
		TaxableIncome:               decimal.NewFromInt(150000),
		SALTDeduction:               decimal.NewFromInt(10000),
		PrivateActivityBondInterest: decimal.NewFromInt(5000),
		OtherAdjustments:            decimal.NewFromInt(2000),
		RegularTax:                  decimal.NewFromInt(22000),
	})
	assert.True(t, result.AMTI.Equal(decimal.NewFromInt(167000)))
	assert.True(t, result.ExemptionAmount.Equal(decimal.NewFromInt(137000)))
	assert.True(t, result.AMTBase.Equal(decimal.NewFromInt(30000)))
	// 30,000 at 26% is 7,800, below regular tax.
	assert.True(t, result.AMT.IsZero())
	assert.False(t, result.IsSubjectToAMT)
}
