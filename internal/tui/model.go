package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/taxcalc/internal/calculation"
	"github.com/rgehrsitz/taxcalc/internal/config"
	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene Scene

	// Terminal dimensions
	width  int
	height int

	// Input files
	scenarioPath string
	rulesPath    string

	// Loaded data and computed results
	scenario  *domain.TaxScenario
	rules     *domain.TaxRulesConfig
	status    domain.FilingStatus
	liability *domain.TaxLiabilityResult
	quarterly *domain.QuarterlyEstimateResult

	// Scrollable content area
	viewport viewport.Model
	ready    bool

	// Error state
	err error

	// Loading state
	loading bool
}

// NewModel creates a new application model
func NewModel(scenarioPath, rulesPath string) Model {
	return Model{
		currentScene: SceneSummary,
		scenarioPath: scenarioPath,
		rulesPath:    rulesPath,
		width:        80,
		height:       24,
		loading:      true,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadScenarioCmd(m.scenarioPath, m.rulesPath)
}

// loadScenarioCmd loads the scenario, resolves the rules set, and runs every
// computation the scenes need. All work happens here so Update only stores
// finished values.
func loadScenarioCmd(scenarioPath, rulesPath string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		scenario, err := parser.LoadScenario(scenarioPath)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		var rules *domain.TaxRulesConfig
		if rulesPath != "" {
			rules, err = parser.LoadRules(rulesPath)
			if err != nil {
				return ErrorMsg{Err: err}
			}
		} else {
			rules, _ = calculation.RulesForYear(scenario.Year)
		}

		status, statusNotes := scenario.Status()
		federal := calculation.NewFederalTaxCalculator(rules)
		liability := federal.EstimateLiability(scenario.Year, scenario.Income, status, scenario.State)
		// Advisory notes from status resolution show up with the liability
		// notes on the summary scene.
		liability.Notes = append(statusNotes, liability.Notes...)

		msg := ScenarioLoadedMsg{
			Scenario:  scenario,
			Rules:     rules,
			Status:    status,
			Liability: &liability,
		}

		if scenario.Quarterly != nil {
			scheduler := calculation.NewQuarterlyEstimateCalculator(rules)
			result := scheduler.BuildSchedule(domain.QuarterlyEstimateInput{
				Year:         scenario.Year,
				FilingStatus: status,
				State:        scenario.State,
				Income:       scenario.Income,
				PriorYearTax: scenario.Quarterly.PriorYearTax,
				PriorYearAGI: scenario.Quarterly.PriorYearAGI,
				Payments:     scenario.Quarterly.Payments,
				CurrentDate:  scenario.AsOfDate,
			})
			msg.Quarterly = &result
		}

		return msg
	}
}
