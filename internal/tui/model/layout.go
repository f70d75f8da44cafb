package model

import (
	"gridctl/internal/tui/surface"
)

// LogPaneRows is the height of the log pane, its title row included.
const LogPaneRows = 8

// LogPaneHeight returns the rows the log pane takes, leaving at least one
// grid row on screen.
func (m *Model) LogPaneHeight() int {
	if !m.ShowLog {
		return 0
	}
	h := LogPaneRows
	if room := m.Height - surface.HeaderRows - surface.StatusRows - 1; h > room {
		h = room
	}
	if h < 2 {
		return 0
	}
	return h
}

// ApplyLayout splits the terminal between the grid and the log pane.
func (m *Model) ApplyLayout() {
	pane := m.LogPaneHeight()
	m.Surface.Resize(m.Width, m.Height-pane)

	width, height := m.Width, pane-1
	if height < 0 {
		height = 0
	}
	widthChanged := m.LogViewport.Width != width
	m.LogViewport.Width = width
	m.LogViewport.Height = height
	if widthChanged {
		m.refreshLogViewport()
	}
	m.LogViewport.GotoBottom()
}

// ToggleLog shows or hides the log pane.
func (m *Model) ToggleLog() {
	m.ShowLog = !m.ShowLog
	m.ApplyLayout()
}

// LogPaneTop returns the first screen row of the log pane.
func (m *Model) LogPaneTop() int {
	return m.Height - surface.StatusRows - m.LogPaneHeight()
}
