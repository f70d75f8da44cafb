package controller

import (
	"gridctl/internal/tui/model"
	"gridctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const controllerSubsystem = "TUI"

// Update routes a message to its handler. Any frame callbacks or editor
// commands the handler produced are scheduled before returning.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		handleWindowSize(m, msg)

	case tea.KeyMsg:
		cmds = append(cmds, handleKeyMsg(m, msg))

	case tea.MouseMsg:
		handleMouseMsg(m, msg)

	case model.FrameMsg:
		if n := m.RunFrame(); n > 0 && m.DebugMode {
			logging.Debug(controllerSubsystem, "Frame ran %d callbacks", n)
		}
		cmds = append(cmds, replayPendingKeys(m))

	case model.NewLogEntryMsg:
		m.AddLogEntry(msg.Entry)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	default:
		// Cursor blink and other text input messages.
		cmds = append(cmds, m.Editor.Update(msg))
	}

	if m.Quitting {
		return m, tea.Batch(append(cmds, tea.Quit)...)
	}
	cmds = append(cmds, m.Editor.Cmd(), m.FrameCmd())
	return m, tea.Batch(cmds...)
}

func handleWindowSize(m *model.Model, msg tea.WindowSizeMsg) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.ApplyLayout()
}
