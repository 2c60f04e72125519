package domain

import (
	"github.com/shopspring/decimal"
)

// AmtInput carries regular taxable income plus the AMT preference items added
// back when assembling AMTI.
type AmtInput struct {
	Year                        int             `yaml:"year" json:"year"`
	FilingStatus                FilingStatus    `yaml:"filing_status" json:"filing_status"`
	TaxableIncome               decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`
	SALTDeduction               decimal.Decimal `yaml:"salt_deduction" json:"salt_deduction"`
	PrivateActivityBondInterest decimal.Decimal `yaml:"private_activity_bond_interest" json:"private_activity_bond_interest"`
	ISOBargainElement           decimal.Decimal `yaml:"iso_bargain_element" json:"iso_bargain_element"`
	OtherAdjustments            decimal.Decimal `yaml:"other_adjustments" json:"other_adjustments"`
	RegularTax                  decimal.Decimal `yaml:"regular_tax" json:"regular_tax"`
}

// AmtResult is the parallel minimum-tax outcome. AMT is never negative; when
// regular tax meets or exceeds tentative minimum tax, AMT is zero.
type AmtResult struct {
	AMTI                decimal.Decimal `yaml:"amti" json:"amti"`
	ExemptionAmount     decimal.Decimal `yaml:"exemption_amount" json:"exemption_amount"`
	ReducedExemption    decimal.Decimal `yaml:"reduced_exemption" json:"reduced_exemption"`
	AMTBase             decimal.Decimal `yaml:"amt_base" json:"amt_base"`
	TentativeMinimumTax decimal.Decimal `yaml:"tentative_minimum_tax" json:"tentative_minimum_tax"`
	AMT                 decimal.Decimal `yaml:"amt" json:"amt"`
	IsSubjectToAMT      bool            `yaml:"is_subject_to_amt" json:"is_subject_to_amt"`
}
