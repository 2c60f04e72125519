package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/taxcalc/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: taxcalc-tui <scenario-file> [rules-file]")
		os.Exit(1)
	}
	scenarioPath := os.Args[1]
	rulesPath := ""
	if len(os.Args) > 2 {
		rulesPath = os.Args[2]
	}

	if _, err := os.Stat(scenarioPath); os.IsNotExist(err) {
		fmt.Printf("Error: scenario file not found: %s\n", scenarioPath)
		os.Exit(1)
	}

	model := tui.NewModel(scenarioPath, rulesPath)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
