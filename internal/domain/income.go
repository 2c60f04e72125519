package domain

import (
	"github.com/shopspring/decimal"
)

// IncomeSummary is the flat income/withholding/deduction record consumed by the
// federal liability estimator. Qualified dividends are a subset of ordinary
// dividends, not an additional amount. All fields default to zero.
type IncomeSummary struct {
	Wages              decimal.Decimal `yaml:"wages" json:"wages"`
	OrdinaryDividends  decimal.Decimal `yaml:"ordinary_dividends" json:"ordinary_dividends"`
	QualifiedDividends decimal.Decimal `yaml:"qualified_dividends" json:"qualified_dividends"`
	InterestIncome     decimal.Decimal `yaml:"interest_income" json:"interest_income"`
	ShortTermGains     decimal.Decimal `yaml:"short_term_gains" json:"short_term_gains"`
	LongTermGains      decimal.Decimal `yaml:"long_term_gains" json:"long_term_gains"`
	BusinessIncome     decimal.Decimal `yaml:"business_income" json:"business_income"`
	RentalIncome       decimal.Decimal `yaml:"rental_income" json:"rental_income"`
	OtherIncome        decimal.Decimal `yaml:"other_income" json:"other_income"`
	Withholding        decimal.Decimal `yaml:"withholding" json:"withholding"`
	EstimatedPayments  decimal.Decimal `yaml:"estimated_payments" json:"estimated_payments"`
	Deductions         decimal.Decimal `yaml:"deductions" json:"deductions"` // itemized, compared against the standard deduction
	ForeignTaxCredit   decimal.Decimal `yaml:"foreign_tax_credit" json:"foreign_tax_credit"`
}

// GrossIncome sums every income field. Qualified dividends are excluded from
// the sum because they are already counted inside ordinary dividends.
func (s IncomeSummary) GrossIncome() decimal.Decimal {
	return s.Wages.
		Add(s.OrdinaryDividends).
		Add(s.InterestIncome).
		Add(s.ShortTermGains).
		Add(s.LongTermGains).
		Add(s.BusinessIncome).
		Add(s.RentalIncome).
		Add(s.OtherIncome)
}

// DeductionType records which deduction won the standard-vs-itemized comparison.
type DeductionType string

const (
	DeductionStandard DeductionType = "standard"
	DeductionItemized DeductionType = "itemized"
)

// TaxLiabilityResult is the output of the federal liability estimator. It is a
// pure value record; one result per (year, status, income, state) computation.
type TaxLiabilityResult struct {
	Year         int          `yaml:"year" json:"year"`
	FilingStatus FilingStatus `yaml:"filing_status" json:"filing_status"`
	State        string       `yaml:"state,omitempty" json:"state,omitempty"`

	GrossIncome           decimal.Decimal `yaml:"gross_income" json:"gross_income"`
	AdjustedGrossIncome   decimal.Decimal `yaml:"adjusted_gross_income" json:"adjusted_gross_income"`
	DeductionUsed         decimal.Decimal `yaml:"deduction_used" json:"deduction_used"`
	DeductionType         DeductionType   `yaml:"deduction_type" json:"deduction_type"`
	TaxableOrdinaryIncome decimal.Decimal `yaml:"taxable_ordinary_income" json:"taxable_ordinary_income"`

	OrdinaryTax          decimal.Decimal `yaml:"ordinary_tax" json:"ordinary_tax"`
	QualifiedDividendTax decimal.Decimal `yaml:"qualified_dividend_tax" json:"qualified_dividend_tax"`
	LongTermGainsTax     decimal.Decimal `yaml:"long_term_gains_tax" json:"long_term_gains_tax"`
	NetInvestmentTax     decimal.Decimal `yaml:"net_investment_tax" json:"net_investment_tax"`
	SelfEmploymentTax    decimal.Decimal `yaml:"self_employment_tax" json:"self_employment_tax"`

	FederalTax decimal.Decimal `yaml:"federal_tax" json:"federal_tax"`
	StateTax   decimal.Decimal `yaml:"state_tax" json:"state_tax"`
	TotalTax   decimal.Decimal `yaml:"total_tax" json:"total_tax"`

	Withholding       decimal.Decimal `yaml:"withholding" json:"withholding"`
	EstimatedPayments decimal.Decimal `yaml:"estimated_payments" json:"estimated_payments"`
	BalanceDue        decimal.Decimal `yaml:"balance_due" json:"balance_due"` // negative means refund

	EffectiveRate decimal.Decimal `yaml:"effective_rate" json:"effective_rate"`
	MarginalRate  decimal.Decimal `yaml:"marginal_rate" json:"marginal_rate"`

	Notes []string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// StateRegime is the closed set of state tax handling variants.
type StateRegime string

const (
	RegimeNoTax       StateRegime = "no_tax"
	RegimeFlat        StateRegime = "flat"
	RegimeFlatSurtax  StateRegime = "flat_surtax"
	RegimeProgressive StateRegime = "progressive"
	RegimeUnsupported StateRegime = "unsupported"
)

// StateTaxResult reports state tax along with the resolved bracket table for
// auditability. Flat regimes carry a single synthetic bracket.
type StateTaxResult struct {
	State         string          `yaml:"state" json:"state"`
	Regime        StateRegime     `yaml:"regime" json:"regime"`
	FilingStatus  FilingStatus    `yaml:"filing_status" json:"filing_status"`
	TaxableIncome decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`
	Tax           decimal.Decimal `yaml:"tax" json:"tax"`
	EffectiveRate decimal.Decimal `yaml:"effective_rate" json:"effective_rate"`
	MarginalRate  decimal.Decimal `yaml:"marginal_rate" json:"marginal_rate"`
	Brackets      []TaxBracket    `yaml:"brackets,omitempty" json:"brackets,omitempty"`
	Notes         []string        `yaml:"notes,omitempty" json:"notes,omitempty"`
}
