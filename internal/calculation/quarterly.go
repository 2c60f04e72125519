package calculation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// QuarterlyEstimateCalculator projects annual liability, computes the
// safe-harbor thresholds, and builds a 4-quarter payment schedule against
// payments already made. The current date is always an input, never a clock
// read.
type QuarterlyEstimateCalculator struct {
	Rules   *domain.TaxRulesConfig
	Federal *FederalTaxCalculator
}

// NewQuarterlyEstimateCalculator creates a scheduler over a rules set.
func NewQuarterlyEstimateCalculator(rules *domain.TaxRulesConfig) *QuarterlyEstimateCalculator {
	return &QuarterlyEstimateCalculator{
		Rules:   rules,
		Federal: NewFederalTaxCalculator(rules),
	}
}

// dueDates returns the four estimated-payment due dates for a tax year:
// April 15, June 15, September 15, and January 15 of the following year.
func dueDates(year int) [4]time.Time {
	return [4]time.Time{
		time.Date(year, time.April, 15, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.September, 15, 0, 0, 0, 0, time.UTC),
		time.Date(year+1, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

// BuildSchedule runs the full analysis for one input.
func (qc *QuarterlyEstimateCalculator) BuildSchedule(input domain.QuarterlyEstimateInput) domain.QuarterlyEstimateResult {
	liability := qc.Federal.EstimateLiability(input.Year, input.Income, input.FilingStatus, input.State)
	projected := liability.TotalTax

	harbor := qc.Rules.SafeHarbor
	priorFactor := harbor.PriorYearFactor
	agiThreshold := harbor.HighIncomeAGIThresholds.ForStatus(input.FilingStatus)
	notes := []string(nil)
	if input.PriorYearAGI.GreaterThan(agiThreshold) {
		priorFactor = harbor.HighIncomePriorYearFactor
		notes = append(notes, "prior-year AGI above threshold; 110% safe harbor applies")
	}
	priorHarbor := ApplyRate(input.PriorYearTax, priorFactor)
	currentHarbor := ApplyRate(projected, harbor.CurrentYearFactor)
	safeHarbor := decimal.Min(priorHarbor, currentHarbor)

	required := RoundToWholeDollar(ClampMin(safeHarbor.Sub(input.Income.Withholding), decimal.Zero))
	perQuarter := RoundToCents(required.Div(decimal.NewFromInt(4)))

	payments := append([]domain.EstimatedPayment(nil), input.Payments...)
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date.Before(payments[j].Date)
	})
	totalPaid := decimal.Zero
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.Amount)
	}

	// Payments fill quarters in order; each quarter's paid amount is capped
	// at its due amount with the overflow rolling into the next quarter.
	dates := dueDates(input.Year)
	quarters := make([]domain.QuarterPayment, 0, 4)
	unallocated := totalPaid
	overdueCount := 0
	var nextDue *time.Time
	unpaidCount := 0
	for i, due := range dates {
		applied := decimal.Min(unallocated, perQuarter)
		unallocated = unallocated.Sub(applied)

		status := domain.PaymentUpcoming
		if applied.GreaterThanOrEqual(perQuarter) {
			status = domain.PaymentPaid
		} else if input.CurrentDate.After(due) {
			status = domain.PaymentOverdue
			overdueCount++
		}
		if status != domain.PaymentPaid {
			unpaidCount++
		}
		if status == domain.PaymentUpcoming && nextDue == nil {
			d := due
			nextDue = &d
		}
		quarters = append(quarters, domain.QuarterPayment{
			Quarter:    i + 1,
			DueDate:    due,
			AmountDue:  perQuarter,
			AmountPaid: applied,
			Status:     status,
		})
	}

	risk := domain.RiskLow
	switch {
	case overdueCount == 1:
		risk = domain.RiskMedium
	case overdueCount > 1:
		risk = domain.RiskHigh
	}

	covered := totalPaid.Add(input.Income.Withholding)
	safeHarborMet := covered.GreaterThanOrEqual(priorHarbor) || covered.GreaterThanOrEqual(currentHarbor)

	suggested := decimal.Zero
	if unpaidCount > 0 {
		remaining := ClampMin(required.Sub(totalPaid), decimal.Zero)
		suggested = RoundToCents(remaining.Div(decimal.NewFromInt(int64(unpaidCount))))
	}

	return domain.QuarterlyEstimateResult{
		Year:                  input.Year,
		ProjectedTax:          projected,
		PriorYearTax:          input.PriorYearTax,
		SafeHarborAmount:      RoundToCents(safeHarbor),
		SafeHarborMet:         safeHarborMet,
		RequiredAnnualPayment: required,
		Withholding:           input.Income.Withholding,
		TotalPaid:             totalPaid,
		Quarters:              quarters,
		UnderpaymentRisk:      risk,
		NextDueDate:           nextDue,
		SuggestedNextPayment:  suggested,
		Notes:                 append(notes, liability.Notes...),
	}
}
