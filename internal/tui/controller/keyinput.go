package controller

import (
	"gridctl/internal/focus"
	"gridctl/internal/tui/design"
	"gridctl/internal/tui/model"
	"gridctl/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg sends keys to the overlay editor while it has input focus.
// Keys typed while a cell is focused but the editor has not taken input focus
// yet are held until the next frame. Otherwise keys scroll the grid or bring
// the editor back.
func handleKeyMsg(m *model.Model, msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.Keys.ForceQuit) {
		quit(m)
		return nil
	}

	if m.Editor.Focused() {
		return m.Editor.Update(msg)
	}
	if editPending(m) {
		m.PendingKeys = append(m.PendingKeys, msg)
		return nil
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		quit(m)
	case key.Matches(msg, m.Keys.Refocus):
		refocus(m)
	case key.Matches(msg, m.Keys.ScrollLeft):
		m.Surface.ScrollBy(-1, 0)
	case key.Matches(msg, m.Keys.ScrollRight):
		m.Surface.ScrollBy(1, 0)
	case key.Matches(msg, m.Keys.ScrollUp):
		m.Surface.ScrollBy(0, -1)
	case key.Matches(msg, m.Keys.ScrollDown):
		m.Surface.ScrollBy(0, 1)
	case key.Matches(msg, m.Keys.PageUp):
		_, rows := m.Surface.VisibleCells()
		m.Surface.ScrollBy(0, -rows)
	case key.Matches(msg, m.Keys.PageDown):
		_, rows := m.Surface.VisibleCells()
		m.Surface.ScrollBy(0, rows)
	case key.Matches(msg, m.Keys.Home):
		m.Surface.ScrollTo(0, 0)
	case key.Matches(msg, m.Keys.ToggleDark):
		m.DarkMode = !m.DarkMode
		design.Initialize(m.DarkMode)
	case key.Matches(msg, m.Keys.ToggleDebug):
		m.DebugMode = !m.DebugMode
		logging.Info(controllerSubsystem, "Debug log %s", onOff(m.DebugMode))
	case key.Matches(msg, m.Keys.ToggleLog):
		m.ToggleLog()
	}
	return nil
}

// editPending reports whether a cell is focused while the editor still waits
// for its focus frame.
func editPending(m *model.Model) bool {
	if !m.Editor.Attached() {
		return false
	}
	state, _ := m.Controller.State()
	return state == focus.Focused
}

// replayPendingKeys delivers the keys held by handleKeyMsg in order. A key
// that moves focus makes the following ones wait for the next frame again.
func replayPendingKeys(m *model.Model) tea.Cmd {
	keys := m.PendingKeys
	m.PendingKeys = nil

	var cmds []tea.Cmd
	for _, k := range keys {
		if m.Quitting {
			break
		}
		cmds = append(cmds, handleKeyMsg(m, k))
	}
	return tea.Batch(cmds...)
}

// refocus edits the last committed cell, or the top-left visible cell when
// nothing was edited yet.
func refocus(m *model.Model) {
	if state, _ := m.Controller.State(); state == focus.Focused {
		return
	}
	if !m.Controller.Refocus() {
		first := m.Surface.FirstVisible()
		m.Controller.Focus(first.Column, first.Row)
	}
	if c, ok := m.Editor.Cell(); ok {
		m.Surface.Reveal(m.Geometry.Rect(c))
	}
}

// quit commits any edit in progress and stops the program.
func quit(m *model.Model) {
	m.Controller.BlurAndCommit()
	m.Quitting = true
	logging.Debug(controllerSubsystem, "Quitting after %d commits", m.Controller.Commits())
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
