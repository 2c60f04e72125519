package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmtAdjustments are the scenario-level AMT preference items; year, status,
// and regular tax are filled in from the rest of the scenario.
type AmtAdjustments struct {
	SALTDeduction               decimal.Decimal `yaml:"salt_deduction" json:"salt_deduction"`
	PrivateActivityBondInterest decimal.Decimal `yaml:"private_activity_bond_interest" json:"private_activity_bond_interest"`
	ISOBargainElement           decimal.Decimal `yaml:"iso_bargain_element" json:"iso_bargain_element"`
	OtherAdjustments            decimal.Decimal `yaml:"other_adjustments" json:"other_adjustments"`
}

// SaleRequest describes a simulated disposal for the lot selection engine.
type SaleRequest struct {
	Symbol       string          `yaml:"symbol" json:"symbol"`
	Quantity     decimal.Decimal `yaml:"quantity" json:"quantity"`
	Price        decimal.Decimal `yaml:"price" json:"price"`
	Method       LotMethod       `yaml:"method" json:"method"`
	SpecificLots []string        `yaml:"specific_lots,omitempty" json:"specific_lots,omitempty"`
}

// QuarterlyScenario holds the scheduler inputs that are not derivable from the
// income summary.
type QuarterlyScenario struct {
	PriorYearTax decimal.Decimal    `yaml:"prior_year_tax" json:"prior_year_tax"`
	PriorYearAGI decimal.Decimal    `yaml:"prior_year_agi" json:"prior_year_agi"`
	Payments     []EstimatedPayment `yaml:"payments" json:"payments"`
}

// TaxScenario is the top-level YAML input record for the CLI and TUI. One
// scenario describes one (year, status, income, state) computation plus any
// portfolio data the lot/wash-sale engines need.
type TaxScenario struct {
	Name         string             `yaml:"name" json:"name"`
	Year         int                `yaml:"year" json:"year"`
	FilingStatus string             `yaml:"filing_status" json:"filing_status"`
	State        string             `yaml:"state,omitempty" json:"state,omitempty"`
	AsOfDate     time.Time          `yaml:"as_of_date" json:"as_of_date"`
	Income       IncomeSummary      `yaml:"income" json:"income"`
	Positions    []Position         `yaml:"positions,omitempty" json:"positions,omitempty"`
	Sales        []SaleRecord       `yaml:"sales,omitempty" json:"sales,omitempty"`
	Purchases    []PurchaseRecord   `yaml:"purchases,omitempty" json:"purchases,omitempty"`
	SaleRequest  *SaleRequest       `yaml:"sale_request,omitempty" json:"sale_request,omitempty"`
	ScheduleD    *ScheduleDInput    `yaml:"schedule_d,omitempty" json:"schedule_d,omitempty"`
	AMT          *AmtAdjustments    `yaml:"amt,omitempty" json:"amt,omitempty"`
	Quarterly    *QuarterlyScenario `yaml:"quarterly,omitempty" json:"quarterly,omitempty"`
}

// Status resolves the scenario's filing status, defaulting unrecognized values
// to single with an advisory note.
func (s *TaxScenario) Status() (FilingStatus, []string) {
	status, ok := ParseFilingStatus(s.FilingStatus)
	if !ok {
		return status, []string{"filing status '" + s.FilingStatus + "' not recognized; defaulted to single"}
	}
	return status, nil
}
