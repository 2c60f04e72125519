package tui

import (
	"github.com/rgehrsitz/taxcalc/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneSummary Scene = iota
	SceneBrackets
	SceneQuarterly
	SceneHelp
)

// String returns the scene name for the breadcrumb
func (s Scene) String() string {
	switch s {
	case SceneSummary:
		return "Summary"
	case SceneBrackets:
		return "Brackets"
	case SceneQuarterly:
		return "Quarterly"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// ErrorMsg displays a load or compute failure
type ErrorMsg struct {
	Err error
}

// ScenarioLoadedMsg carries the loaded scenario plus every computed result.
// Computation happens inside the load command so the update loop only ever
// stores finished values.
type ScenarioLoadedMsg struct {
	Scenario  *domain.TaxScenario
	Rules     *domain.TaxRulesConfig
	Status    domain.FilingStatus
	Liability *domain.TaxLiabilityResult
	Quarterly *domain.QuarterlyEstimateResult
}
