package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one row of an ordered bracket table. Max == nil means the
// bracket is unbounded. Tables partition [0, inf) with no gaps or overlaps and
// are treated as immutable configuration once built.
type TaxBracket struct {
	Min  decimal.Decimal  `yaml:"min" json:"min"`
	Max  *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
}

// Bounded reports whether the bracket has an upper bound.
func (b TaxBracket) Bounded() bool { return b.Max != nil }

// StatusAmounts holds one dollar amount per filing status.
type StatusAmounts struct {
	Single                  decimal.Decimal `yaml:"single" json:"single"`
	MarriedFilingJointly    decimal.Decimal `yaml:"married_filing_jointly" json:"married_filing_jointly"`
	MarriedFilingSeparately decimal.Decimal `yaml:"married_filing_separately" json:"married_filing_separately"`
	HeadOfHousehold         decimal.Decimal `yaml:"head_of_household" json:"head_of_household"`
}

// ForStatus resolves the amount for a filing status.
func (a StatusAmounts) ForStatus(fs FilingStatus) decimal.Decimal {
	switch fs {
	case FilingMarriedFilingJointly:
		return a.MarriedFilingJointly
	case FilingMarriedFilingSeparately:
		return a.MarriedFilingSeparately
	case FilingHeadOfHousehold:
		return a.HeadOfHousehold
	default:
		return a.Single
	}
}

// StatusBrackets holds one bracket table per filing status. Jointly-filing
// tables are defined independently, not derived from the single table.
type StatusBrackets struct {
	Single                  []TaxBracket `yaml:"single" json:"single"`
	MarriedFilingJointly    []TaxBracket `yaml:"married_filing_jointly" json:"married_filing_jointly"`
	MarriedFilingSeparately []TaxBracket `yaml:"married_filing_separately" json:"married_filing_separately"`
	HeadOfHousehold         []TaxBracket `yaml:"head_of_household" json:"head_of_household"`
}

// ForStatus resolves the table for a filing status, falling back to the single
// table when a status-specific table is not defined (state tables often define
// only single and joint variants).
func (b StatusBrackets) ForStatus(fs FilingStatus) []TaxBracket {
	var table []TaxBracket
	switch fs {
	case FilingMarriedFilingJointly:
		table = b.MarriedFilingJointly
	case FilingMarriedFilingSeparately:
		table = b.MarriedFilingSeparately
	case FilingHeadOfHousehold:
		table = b.HeadOfHousehold
	default:
		table = b.Single
	}
	if len(table) == 0 {
		table = b.Single
	}
	return table
}

// FederalTaxRules contains the federal bracket tables and thresholds for one
// tax year.
type FederalTaxRules struct {
	StandardDeduction    StatusAmounts   `yaml:"standard_deduction" json:"standard_deduction"`
	OrdinaryBrackets     StatusBrackets  `yaml:"ordinary_brackets" json:"ordinary_brackets"`
	CapitalGainsBrackets StatusBrackets  `yaml:"capital_gains_brackets" json:"capital_gains_brackets"`
	NIITRate             decimal.Decimal `yaml:"niit_rate" json:"niit_rate"`
	NIITThresholds       StatusAmounts   `yaml:"niit_thresholds" json:"niit_thresholds"`
}

// SelfEmploymentRules contains the SE tax constants for one tax year.
type SelfEmploymentRules struct {
	NetEarningsFactor            decimal.Decimal `yaml:"net_earnings_factor" json:"net_earnings_factor"`
	SocialSecurityRate           decimal.Decimal `yaml:"social_security_rate" json:"social_security_rate"`
	SocialSecurityWageBase       decimal.Decimal `yaml:"social_security_wage_base" json:"social_security_wage_base"`
	MedicareRate                 decimal.Decimal `yaml:"medicare_rate" json:"medicare_rate"`
	AdditionalMedicareRate       decimal.Decimal `yaml:"additional_medicare_rate" json:"additional_medicare_rate"`
	AdditionalMedicareThresholds StatusAmounts   `yaml:"additional_medicare_thresholds" json:"additional_medicare_thresholds"`
}

// AMTRules contains the alternative-minimum-tax constants for one tax year.
// Married-filing-separately carries its own rate threshold, not half the joint
// one.
type AMTRules struct {
	Exemption          StatusAmounts   `yaml:"exemption" json:"exemption"`
	PhaseoutThreshold  StatusAmounts   `yaml:"phaseout_threshold" json:"phaseout_threshold"`
	PhaseoutRate       decimal.Decimal `yaml:"phaseout_rate" json:"phaseout_rate"`
	LowRate            decimal.Decimal `yaml:"low_rate" json:"low_rate"`
	HighRate           decimal.Decimal `yaml:"high_rate" json:"high_rate"`
	HighRateThresholds StatusAmounts   `yaml:"high_rate_thresholds" json:"high_rate_thresholds"`
}

// CapitalLossRules contains the Schedule D deduction caps.
type CapitalLossRules struct {
	DeductionCap StatusAmounts `yaml:"deduction_cap" json:"deduction_cap"`
}

// SafeHarborRules contains the estimated-payment safe-harbor factors.
type SafeHarborRules struct {
	PriorYearFactor           decimal.Decimal `yaml:"prior_year_factor" json:"prior_year_factor"`
	HighIncomePriorYearFactor decimal.Decimal `yaml:"high_income_prior_year_factor" json:"high_income_prior_year_factor"`
	CurrentYearFactor         decimal.Decimal `yaml:"current_year_factor" json:"current_year_factor"`
	HighIncomeAGIThresholds   StatusAmounts   `yaml:"high_income_agi_thresholds" json:"high_income_agi_thresholds"`
}

// StateRules describes one state's regime. Progressive states carry
// status-specific bracket tables; flat states carry a single rate; the
// flat-plus-surtax regime layers a second rate above SurtaxThreshold.
type StateRules struct {
	Name            string          `yaml:"name" json:"name"`
	Regime          StateRegime     `yaml:"regime" json:"regime"`
	Rate            decimal.Decimal `yaml:"rate,omitempty" json:"rate,omitempty"`
	SurtaxRate      decimal.Decimal `yaml:"surtax_rate,omitempty" json:"surtax_rate,omitempty"`
	SurtaxThreshold decimal.Decimal `yaml:"surtax_threshold,omitempty" json:"surtax_threshold,omitempty"`
	Brackets        StatusBrackets  `yaml:"brackets,omitempty" json:"brackets,omitempty"`
	Notes           []string        `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// RulesMetadata describes the provenance of a rules set.
type RulesMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// TaxRulesConfig is the complete year-versioned rules set. Built-in years live
// in the calculation package; a YAML rules file with the same shape can
// override any section. Instances are read-only once constructed.
type TaxRulesConfig struct {
	Metadata       RulesMetadata         `yaml:"metadata" json:"metadata"`
	FederalTax     FederalTaxRules       `yaml:"federal_tax" json:"federal_tax"`
	SelfEmployment SelfEmploymentRules   `yaml:"self_employment" json:"self_employment"`
	AMT            AMTRules              `yaml:"amt" json:"amt"`
	CapitalLoss    CapitalLossRules      `yaml:"capital_loss" json:"capital_loss"`
	SafeHarbor     SafeHarborRules       `yaml:"safe_harbor" json:"safe_harbor"`
	States         map[string]StateRules `yaml:"states" json:"states"`
}
