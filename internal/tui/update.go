package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := m.height - 5 // title (2) + status (1) + padding (2)
		if !m.ready {
			m.viewport = viewport.New(m.width, contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = contentHeight
		}
		m.viewport.SetContent(m.sceneContent())
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case ScenarioLoadedMsg:
		m.scenario = msg.Scenario
		m.rules = msg.Rules
		m.status = msg.Status
		m.liability = msg.Liability
		m.quarterly = msg.Quarterly
		m.loading = false
		if m.ready {
			m.viewport.SetContent(m.sceneContent())
		}
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress routes navigation and quit keys; everything else scrolls the
// viewport.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "1":
		return m.switchScene(SceneSummary)
	case "2":
		return m.switchScene(SceneBrackets)
	case "3":
		return m.switchScene(SceneQuarterly)
	case "?":
		return m.switchScene(SceneHelp)
	case "tab":
		next := (m.currentScene + 1) % 4
		return m.switchScene(next)
	case "r":
		m.loading = true
		m.err = nil
		return m, loadScenarioCmd(m.scenarioPath, m.rulesPath)
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) switchScene(scene Scene) (tea.Model, tea.Cmd) {
	m.currentScene = scene
	if m.ready {
		m.viewport.SetContent(m.sceneContent())
		m.viewport.GotoTop()
	}
	return m, nil
}
