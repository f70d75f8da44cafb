package controller

import (
	"gridctl/internal/config"
	"gridctl/internal/tui/model"
	"gridctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the grid.
func NewProgram(
	cfg config.GridctlConfig,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
) (*tea.Program, error) {
	m, err := model.InitializeModel(cfg, debugMode, logChannel)
	if err != nil {
		return nil, err
	}

	app := NewAppModel(m)

	return tea.NewProgram(app, ProgramOptions(m)...), nil
}

// ProgramOptions returns the program options for the model.
func ProgramOptions(m *model.Model) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if m.MouseEnabled {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	return opts
}
