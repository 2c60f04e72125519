package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus classifies a quarter against the supplied current date.
type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "paid"
	PaymentUpcoming PaymentStatus = "upcoming"
	PaymentOverdue  PaymentStatus = "overdue"
)

// UnderpaymentRisk grades the schedule by its count of overdue quarters:
// zero is low, exactly one is medium, more than one is high.
type UnderpaymentRisk string

const (
	RiskLow    UnderpaymentRisk = "low"
	RiskMedium UnderpaymentRisk = "medium"
	RiskHigh   UnderpaymentRisk = "high"
)

// EstimatedPayment is one payment already made toward the year's estimates.
type EstimatedPayment struct {
	Date   time.Time       `yaml:"date" json:"date"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// QuarterPayment is one row of the 4-quarter schedule.
type QuarterPayment struct {
	Quarter    int             `yaml:"quarter" json:"quarter"`
	DueDate    time.Time       `yaml:"due_date" json:"due_date"`
	AmountDue  decimal.Decimal `yaml:"amount_due" json:"amount_due"`
	AmountPaid decimal.Decimal `yaml:"amount_paid" json:"amount_paid"`
	Status     PaymentStatus   `yaml:"status" json:"status"`
}

// QuarterlyEstimateInput feeds the scheduler. CurrentDate is always supplied
// by the caller; the scheduler never reads a clock.
type QuarterlyEstimateInput struct {
	Year         int                `yaml:"year" json:"year"`
	FilingStatus FilingStatus       `yaml:"filing_status" json:"filing_status"`
	State        string             `yaml:"state,omitempty" json:"state,omitempty"`
	Income       IncomeSummary      `yaml:"income" json:"income"`
	PriorYearTax decimal.Decimal    `yaml:"prior_year_tax" json:"prior_year_tax"`
	PriorYearAGI decimal.Decimal    `yaml:"prior_year_agi" json:"prior_year_agi"`
	Payments     []EstimatedPayment `yaml:"payments" json:"payments"`
	CurrentDate  time.Time          `yaml:"current_date" json:"current_date"`
}

// QuarterlyEstimateResult is the full safe-harbor and schedule analysis.
type QuarterlyEstimateResult struct {
	Year                  int              `yaml:"year" json:"year"`
	ProjectedTax          decimal.Decimal  `yaml:"projected_tax" json:"projected_tax"`
	PriorYearTax          decimal.Decimal  `yaml:"prior_year_tax" json:"prior_year_tax"`
	SafeHarborAmount      decimal.Decimal  `yaml:"safe_harbor_amount" json:"safe_harbor_amount"`
	SafeHarborMet         bool             `yaml:"safe_harbor_met" json:"safe_harbor_met"`
	RequiredAnnualPayment decimal.Decimal  `yaml:"required_annual_payment" json:"required_annual_payment"`
	Withholding           decimal.Decimal  `yaml:"withholding" json:"withholding"`
	TotalPaid             decimal.Decimal  `yaml:"total_paid" json:"total_paid"`
	Quarters              []QuarterPayment `yaml:"quarters" json:"quarters"`
	UnderpaymentRisk      UnderpaymentRisk `yaml:"underpayment_risk" json:"underpayment_risk"`
	NextDueDate           *time.Time       `yaml:"next_due_date,omitempty" json:"next_due_date,omitempty"`
	SuggestedNextPayment  decimal.Decimal  `yaml:"suggested_next_payment" json:"suggested_next_payment"`
	Notes                 []string         `yaml:"notes,omitempty" json:"notes,omitempty"`
}
