package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenarioCmd(t *testing.T) {
	path := writeScenarioFile(t, `
name: "Load test"
year: 2025
filing_status: single
income:
  wages: 65000
`)

	msg := loadScenarioCmd(path, "")()
	loaded, ok := msg.(ScenarioLoadedMsg)
	require.True(t, ok, "expected ScenarioLoadedMsg, got %T", msg)

	assert.Equal(t, domain.FilingSingle, loaded.Status)
	require.NotNil(t, loaded.Liability)
	assert.False(t, loaded.Liability.TotalTax.IsZero())
	assert.Nil(t, loaded.Quarterly)
}

func TestLoadScenarioCmdUnrecognizedStatusNote(t *testing.T) {
	path := writeScenarioFile(t, `
name: "Status fallback"
year: 2025
filing_status: partnered
income:
  wages: 65000
`)

	msg := loadScenarioCmd(path, "")()
	loaded, ok := msg.(ScenarioLoadedMsg)
	require.True(t, ok, "expected ScenarioLoadedMsg, got %T", msg)

	// The single-filer fallback must be visible in the summary notes, not
	// silently applied.
	assert.Equal(t, domain.FilingSingle, loaded.Status)
	found := false
	for _, note := range loaded.Liability.Notes {
		if strings.Contains(note, "not recognized") {
			found = true
		}
	}
	assert.True(t, found, "expected a fallback note in %v", loaded.Liability.Notes)
}

func TestLoadScenarioCmdMissingFile(t *testing.T) {
	msg := loadScenarioCmd("/nonexistent/scenario.yaml", "")()
	errMsg, ok := msg.(ErrorMsg)
	require.True(t, ok, "expected ErrorMsg, got %T", msg)
	assert.Error(t, errMsg.Err)
}
