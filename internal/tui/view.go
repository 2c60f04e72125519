package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/taxcalc/internal/domain"
	"github.com/rgehrsitz/taxcalc/internal/output"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return "\n  Loading scenario...\n"
	}
	if m.err != nil {
		return "\n" + ErrorStyle.Render("  Error: "+m.err.Error()) + "\n\n  Press q to quit, r to retry.\n"
	}
	if !m.ready {
		return "\n  Initializing...\n"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		m.viewport.View(),
		m.renderStatusBar(),
	)
}

func (m Model) renderTitleBar() string {
	name := "Tax Scenario"
	if m.scenario != nil && m.scenario.Name != "" {
		name = m.scenario.Name
	}
	title := TitleStyle.Render("taxcalc - " + name)
	breadcrumb := SubtitleStyle.Render(m.currentScene.String())
	return lipgloss.JoinVertical(lipgloss.Left, title, breadcrumb)
}

func (m Model) renderStatusBar() string {
	return StatusBarStyle.Width(m.width).Render(
		"[1] Summary  [2] Brackets  [3] Quarterly  [?] Help  [r] Reload  [q] Quit")
}

func (m Model) sceneContent() string {
	switch m.currentScene {
	case SceneSummary:
		return m.renderSummary()
	case SceneBrackets:
		return m.renderBrackets()
	case SceneQuarterly:
		return m.renderQuarterly()
	case SceneHelp:
		return m.renderHelp()
	default:
		return "Unknown scene"
	}
}

func detailRow(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}

func (m Model) renderSummary() string {
	if m.liability == nil {
		return "No results."
	}
	r := m.liability

	var rows []string
	rows = append(rows,
		detailRow("Gross Income", output.FormatCurrency(r.GrossIncome)),
		detailRow("Adjusted Gross Income", output.FormatCurrency(r.AdjustedGrossIncome)),
		detailRow(fmt.Sprintf("Deduction (%s)", r.DeductionType), output.FormatCurrency(r.DeductionUsed)),
		detailRow("Taxable Ordinary Income", output.FormatCurrency(r.TaxableOrdinaryIncome)),
		"",
		detailRow("Ordinary Tax", output.FormatCurrency(r.OrdinaryTax)),
	)
	if !r.QualifiedDividendTax.IsZero() {
		rows = append(rows, detailRow("Qualified Dividend Tax", output.FormatCurrency(r.QualifiedDividendTax)))
	}
	if !r.LongTermGainsTax.IsZero() {
		rows = append(rows, detailRow("Long-Term Gains Tax", output.FormatCurrency(r.LongTermGainsTax)))
	}
	if !r.SelfEmploymentTax.IsZero() {
		rows = append(rows, detailRow("Self-Employment Tax", output.FormatCurrency(r.SelfEmploymentTax)))
	}
	if !r.NetInvestmentTax.IsZero() {
		rows = append(rows, detailRow("Net Investment Tax", output.FormatCurrency(r.NetInvestmentTax)))
	}
	rows = append(rows, detailRow("Federal Tax", output.FormatCurrency(r.FederalTax)))
	if r.State != "" {
		rows = append(rows, detailRow("State Tax ("+r.State+")", output.FormatCurrency(r.StateTax)))
	}
	rows = append(rows,
		HighlightStyle.Render(detailRow("Total Tax", output.FormatCurrency(r.TotalTax))),
		"",
		detailRow("Withholding", output.FormatCurrency(r.Withholding)),
	)
	if r.BalanceDue.IsNegative() {
		rows = append(rows, PaidStyle.Render(detailRow("Refund", output.FormatCurrency(r.BalanceDue.Abs()))))
	} else {
		rows = append(rows, OverdueStyle.Render(detailRow("Balance Due", output.FormatCurrency(r.BalanceDue))))
	}
	rows = append(rows,
		"",
		detailRow("Effective Rate", output.FormatRate(r.EffectiveRate)),
		detailRow("Marginal Rate", output.FormatRate(r.MarginalRate)),
	)
	for _, note := range r.Notes {
		rows = append(rows, SubtitleStyle.Render("  - "+note))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderBrackets() string {
	if m.rules == nil || m.liability == nil {
		return "No results."
	}

	brackets := m.rules.FederalTax.OrdinaryBrackets.ForStatus(m.status)
	taxable := m.liability.TaxableOrdinaryIncome

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-16s %-16s %8s %14s", "From", "To", "Rate", "Tax In Bracket")))
	b.WriteString("\n")
	for _, bracket := range brackets {
		upper := "and up"
		span := taxable.Sub(bracket.Min)
		if bracket.Bounded() {
			upper = output.FormatCurrency(*bracket.Max)
			span = decimal.Min(span, bracket.Max.Sub(bracket.Min))
		}
		if span.IsNegative() {
			span = decimal.Zero
		}
		line := fmt.Sprintf("%-16s %-16s %8s %14s",
			output.FormatCurrency(bracket.Min), upper,
			output.FormatRate(bracket.Rate),
			output.FormatCurrency(span.Mul(bracket.Rate).Round(2)))

		active := taxable.GreaterThan(bracket.Min) &&
			(!bracket.Bounded() || taxable.LessThanOrEqual(*bracket.Max))
		if active {
			b.WriteString(HighlightStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(detailRow("Taxable Ordinary Income", output.FormatCurrency(taxable)))
	return b.String()
}

func (m Model) renderQuarterly() string {
	if m.quarterly == nil {
		return "No quarterly data in this scenario.\n\nAdd a 'quarterly' section with prior_year_tax and prior_year_agi."
	}
	r := m.quarterly

	var rows []string
	rows = append(rows,
		detailRow("Projected Tax", output.FormatCurrency(r.ProjectedTax)),
		detailRow("Safe Harbor Amount", output.FormatCurrency(r.SafeHarborAmount)),
		detailRow("Required Annual Payment", output.FormatCurrency(r.RequiredAnnualPayment)),
		detailRow("Paid To Date", output.FormatCurrency(r.TotalPaid)),
		"",
		TableHeaderStyle.Render(fmt.Sprintf("%-5s %-12s %14s %14s  %-10s", "Qtr", "Due", "Due Amt", "Paid", "Status")),
	)
	for _, q := range r.Quarters {
		line := fmt.Sprintf("Q%-4d %-12s %14s %14s  %-10s",
			q.Quarter, q.DueDate.Format("2006-01-02"),
			output.FormatCurrency(q.AmountDue), output.FormatCurrency(q.AmountPaid), q.Status)
		switch q.Status {
		case domain.PaymentPaid:
			line = PaidStyle.Render(line)
		case domain.PaymentOverdue:
			line = OverdueStyle.Render(line)
		default:
			line = UpcomingStyle.Render(line)
		}
		rows = append(rows, line)
	}
	rows = append(rows, "", detailRow("Underpayment Risk", string(r.UnderpaymentRisk)))
	if r.NextDueDate != nil {
		rows = append(rows,
			detailRow("Next Due Date", r.NextDueDate.Format("2006-01-02")),
			detailRow("Suggested Payment", output.FormatCurrency(r.SuggestedNextPayment)),
		)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderHelp() string {
	return strings.Join([]string{
		"KEYS",
		"",
		"  1        Liability summary",
		"  2        Federal bracket detail",
		"  3        Quarterly estimate schedule",
		"  tab      Cycle scenes",
		"  up/down  Scroll",
		"  r        Reload the scenario file",
		"  q        Quit",
		"",
		"Scenario and rules files are YAML; see the examples directory.",
	}, "\n")
}
