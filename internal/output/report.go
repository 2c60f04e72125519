package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// ReportGenerator renders calculation results for the console or as JSON
type ReportGenerator struct{}

// NewReportGenerator creates a new report generator
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// WriteReport renders any result value in the requested format. Table output
// dispatches on the concrete result type; JSON marshals the value as-is.
func (rg *ReportGenerator) WriteReport(w io.Writer, result interface{}, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "table", "console", "":
		text, err := rg.formatTable(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, text)
		return err
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func (rg *ReportGenerator) formatTable(result interface{}) (string, error) {
	switch v := result.(type) {
	case *domain.TaxLiabilityResult:
		return rg.FormatLiability(v), nil
	case *domain.StateTaxResult:
		return rg.FormatStateTax(v), nil
	case *domain.AmtResult:
		return rg.FormatAMT(v), nil
	case *domain.ScheduleDResult:
		return rg.FormatScheduleD(v), nil
	case *domain.LotStrategyComparison:
		return rg.FormatLotComparison(v), nil
	case *domain.LotSelectionResult:
		return rg.FormatLotSelection(v), nil
	case *domain.WashSaleCheckResult:
		return rg.FormatWashSale(v), nil
	case *domain.QuarterlyEstimateResult:
		return rg.FormatQuarterly(v), nil
	default:
		return "", fmt.Errorf("no table formatter for %T", result)
	}
}

// FormatLiability renders the full federal liability breakdown
func (rg *ReportGenerator) FormatLiability(result *domain.TaxLiabilityResult) string {
	var b strings.Builder

	b.WriteString(header(fmt.Sprintf("TAX LIABILITY ESTIMATE (%d, %s)", result.Year, result.FilingStatus)))
	row(&b, "Gross Income", FormatCurrency(result.GrossIncome))
	row(&b, "Adjusted Gross Income", FormatCurrency(result.AdjustedGrossIncome))
	row(&b, fmt.Sprintf("Deduction (%s)", result.DeductionType), FormatCurrency(result.DeductionUsed))
	row(&b, "Taxable Ordinary Income", FormatCurrency(result.TaxableOrdinaryIncome))
	b.WriteString("\n")

	row(&b, "Ordinary Income Tax", FormatCurrency(result.OrdinaryTax))
	if !result.QualifiedDividendTax.IsZero() {
		row(&b, "Qualified Dividend Tax", FormatCurrency(result.QualifiedDividendTax))
	}
	if !result.LongTermGainsTax.IsZero() {
		row(&b, "Long-Term Gains Tax", FormatCurrency(result.LongTermGainsTax))
	}
	if !result.SelfEmploymentTax.IsZero() {
		row(&b, "Self-Employment Tax", FormatCurrency(result.SelfEmploymentTax))
	}
	if !result.NetInvestmentTax.IsZero() {
		row(&b, "Net Investment Income Tax", FormatCurrency(result.NetInvestmentTax))
	}
	row(&b, "Federal Tax", FormatCurrency(result.FederalTax))
	if result.State != "" {
		row(&b, fmt.Sprintf("State Tax (%s)", result.State), FormatCurrency(result.StateTax))
	}
	row(&b, "TOTAL TAX", FormatCurrency(result.TotalTax))
	b.WriteString("\n")

	row(&b, "Withholding", FormatCurrency(result.Withholding))
	if !result.EstimatedPayments.IsZero() {
		row(&b, "Estimated Payments", FormatCurrency(result.EstimatedPayments))
	}
	if result.BalanceDue.IsNegative() {
		row(&b, "REFUND", FormatCurrency(result.BalanceDue.Abs()))
	} else {
		row(&b, "BALANCE DUE", FormatCurrency(result.BalanceDue))
	}
	b.WriteString("\n")

	row(&b, "Effective Rate", FormatRate(result.EffectiveRate))
	row(&b, "Marginal Rate", FormatRate(result.MarginalRate))
	writeNotes(&b, result.Notes)
	return b.String()
}

// FormatStateTax renders a state calculation with its bracket detail
func (rg *ReportGenerator) FormatStateTax(result *domain.StateTaxResult) string {
	var b strings.Builder

	b.WriteString(header(fmt.Sprintf("STATE TAX (%s, %s regime)", result.State, result.Regime)))
	row(&b, "Taxable Income", FormatCurrency(result.TaxableIncome))
	row(&b, "State Tax", FormatCurrency(result.Tax))
	row(&b, "Effective Rate", FormatRate(result.EffectiveRate))
	row(&b, "Marginal Rate", FormatRate(result.MarginalRate))

	if len(result.Brackets) > 0 {
		b.WriteString("\nBRACKETS:\n")
		for _, bracket := range result.Brackets {
			upper := "and up"
			if bracket.Bounded() {
				upper = "to " + FormatCurrency(*bracket.Max)
			}
			fmt.Fprintf(&b, "  %s %s at %s\n", FormatCurrency(bracket.Min), upper, FormatRate(bracket.Rate))
		}
	}
	writeNotes(&b, result.Notes)
	return b.String()
}

// FormatAMT renders the parallel minimum-tax computation
func (rg *ReportGenerator) FormatAMT(result *domain.AmtResult) string {
	var b strings.Builder

	b.WriteString(header("ALTERNATIVE MINIMUM TAX"))
	row(&b, "AMT Income (AMTI)", FormatCurrency(result.AMTI))
	row(&b, "Exemption", FormatCurrency(result.ExemptionAmount))
	if !result.ReducedExemption.Equal(result.ExemptionAmount) {
		row(&b, "Exemption After Phaseout", FormatCurrency(result.ReducedExemption))
	}
	row(&b, "AMT Base", FormatCurrency(result.AMTBase))
	row(&b, "Tentative Minimum Tax", FormatCurrency(result.TentativeMinimumTax))
	row(&b, "AMT Owed", FormatCurrency(result.AMT))
	if result.IsSubjectToAMT {
		b.WriteString("\nSubject to AMT: tentative minimum tax exceeds regular tax.\n")
	} else {
		b.WriteString("\nNot subject to AMT.\n")
	}
	return b.String()
}

// FormatScheduleD renders the capital gain netting outcome
func (rg *ReportGenerator) FormatScheduleD(result *domain.ScheduleDResult) string {
	var b strings.Builder

	b.WriteString(header("SCHEDULE D NETTING"))
	row(&b, "Net Short-Term", FormatCurrency(result.NetShortTerm))
	row(&b, "Net Long-Term", FormatCurrency(result.NetLongTerm))
	row(&b, "Net Total", FormatCurrency(result.NetTotal))
	row(&b, "Capital Loss Deduction", FormatCurrency(result.CapitalLossDeduction))
	row(&b, "Carryover Out (Short)", FormatCurrency(result.CarryoverOutShortTerm))
	row(&b, "Carryover Out (Long)", FormatCurrency(result.CarryoverOutLongTerm))
	if result.QualifiesForPreferentialRates {
		b.WriteString("\nNet long-term gain qualifies for preferential rates.\n")
	}
	return b.String()
}

// FormatLotSelection renders one disposal strategy's breakdown
func (rg *ReportGenerator) FormatLotSelection(result *domain.LotSelectionResult) string {
	var b strings.Builder

	b.WriteString(header(fmt.Sprintf("LOT SELECTION (%s)", strings.ToUpper(string(result.Method)))))
	row(&b, "Quantity Sold", result.QuantitySold.String())
	row(&b, "Total Proceeds", FormatCurrency(result.TotalProceeds))
	row(&b, "Total Cost Basis", FormatCurrency(result.TotalCostBasis))
	row(&b, "Total Gain/Loss", FormatCurrency(result.TotalGainLoss))
	row(&b, "Short-Term Gain/Loss", FormatCurrency(result.ShortTermGainLoss))
	row(&b, "Long-Term Gain/Loss", FormatCurrency(result.LongTermGainLoss))
	row(&b, "Estimated Tax", FormatCurrency(result.EstimatedTax))

	if len(result.Lots) > 0 {
		b.WriteString("\nLOTS CONSUMED:\n")
		for _, lot := range result.Lots {
			fmt.Fprintf(&b, "  %-12s %s acquired %s  qty %s  gain/loss %s (%s)\n",
				lot.LotID, lot.Symbol, lot.DateAcquired.Format("2006-01-02"),
				lot.QuantitySold.String(), FormatCurrency(lot.GainLoss), lot.HoldingPeriod)
		}
	}
	writeNotes(&b, result.Notes)
	return b.String()
}

// FormatLotComparison renders the per-strategy comparison table
func (rg *ReportGenerator) FormatLotComparison(comparison *domain.LotStrategyComparison) string {
	var b strings.Builder

	b.WriteString(header("LOT STRATEGY COMPARISON"))
	fmt.Fprintf(&b, "%-14s %14s %14s %14s %14s\n",
		"Method", "Gain/Loss", "Short-Term", "Long-Term", "Est. Tax")
	b.WriteString(strings.Repeat("-", 74))
	b.WriteString("\n")
	for _, result := range comparison.Results {
		marker := "  "
		if result.Method == comparison.BestMethod {
			marker = "* "
		}
		fmt.Fprintf(&b, "%s%-12s %14s %14s %14s %14s\n",
			marker, strings.ToUpper(string(result.Method)),
			FormatCurrency(result.TotalGainLoss),
			FormatCurrency(result.ShortTermGainLoss),
			FormatCurrency(result.LongTermGainLoss),
			FormatCurrency(result.EstimatedTax))
	}
	fmt.Fprintf(&b, "\nBest method: %s (lowest estimated tax)\n", strings.ToUpper(string(comparison.BestMethod)))
	return b.String()
}

// FormatWashSale renders the wash-sale compliance check
func (rg *ReportGenerator) FormatWashSale(result *domain.WashSaleCheckResult) string {
	var b strings.Builder

	b.WriteString(header("WASH-SALE CHECK"))
	if result.Compliant {
		b.WriteString("No wash-sale violations found.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%d violation(s), %s of losses disallowed\n\n",
		len(result.Violations), FormatCurrency(result.TotalDisallowedLoss))
	for _, v := range result.Violations {
		fmt.Fprintf(&b, "  %-8s sold %s, repurchased %s: %s disallowed (basis adjustment %s)\n",
			v.Symbol, v.SaleDate.Format("2006-01-02"), v.PurchaseDate.Format("2006-01-02"),
			FormatCurrency(v.DisallowedLoss), FormatCurrency(v.BasisAdjustment))
	}
	return b.String()
}

// FormatQuarterly renders the safe-harbor analysis and payment schedule
func (rg *ReportGenerator) FormatQuarterly(result *domain.QuarterlyEstimateResult) string {
	var b strings.Builder

	b.WriteString(header(fmt.Sprintf("QUARTERLY ESTIMATES (%d)", result.Year)))
	row(&b, "Projected Tax", FormatCurrency(result.ProjectedTax))
	row(&b, "Prior Year Tax", FormatCurrency(result.PriorYearTax))
	row(&b, "Safe Harbor Amount", FormatCurrency(result.SafeHarborAmount))
	row(&b, "Withholding", FormatCurrency(result.Withholding))
	row(&b, "Required Annual Payment", FormatCurrency(result.RequiredAnnualPayment))
	row(&b, "Paid To Date", FormatCurrency(result.TotalPaid))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%-4s %-12s %14s %14s %-10s\n", "Qtr", "Due", "Amount Due", "Paid", "Status")
	b.WriteString(strings.Repeat("-", 60))
	b.WriteString("\n")
	for _, q := range result.Quarters {
		fmt.Fprintf(&b, "Q%-3d %-12s %14s %14s %-10s\n",
			q.Quarter, q.DueDate.Format("2006-01-02"),
			FormatCurrency(q.AmountDue), FormatCurrency(q.AmountPaid), q.Status)
	}
	b.WriteString("\n")

	row(&b, "Underpayment Risk", string(result.UnderpaymentRisk))
	if result.SafeHarborMet {
		row(&b, "Safe Harbor", "met")
	} else {
		row(&b, "Safe Harbor", "not met")
	}
	if result.NextDueDate != nil {
		row(&b, "Next Due Date", result.NextDueDate.Format("2006-01-02"))
		row(&b, "Suggested Payment", FormatCurrency(result.SuggestedNextPayment))
	}
	writeNotes(&b, result.Notes)
	return b.String()
}

func header(title string) string {
	line := strings.Repeat("=", len(title))
	return title + "\n" + line + "\n"
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-28s %s\n", label+":", value)
}

func writeNotes(b *strings.Builder, notes []string) {
	if len(notes) == 0 {
		return
	}
	b.WriteString("\nNOTES:\n")
	for _, note := range notes {
		fmt.Fprintf(b, "  - %s\n", note)
	}
}

// FormatCurrency formats a decimal as currency
func FormatCurrency(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + amount.Abs().StringFixed(2)
	}
	return "$" + amount.StringFixed(2)
}

// FormatRate formats a fractional rate as a percentage
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).Round(2).StringFixed(2) + "%"
}
