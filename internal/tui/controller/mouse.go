package controller

import (
	"gridctl/internal/scene"
	"gridctl/internal/tui/model"
	"gridctl/internal/tui/surface"

	tea "github.com/charmbracelet/bubbletea"
)

// Cells scrolled per wheel notch.
const wheelRows = 3

// handleMouseMsg feeds pointer events into the scene. A press anywhere but
// on the editor takes input focus away from it, which commits the edit; a
// primary press on a cell then focuses that cell.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) {
	if !m.MouseEnabled {
		return
	}
	if overLogPane(m, msg.Y) {
		m.LogViewport, _ = m.LogViewport.Update(msg)
		return
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Shift {
			m.Surface.ScrollBy(-1, 0)
		} else {
			m.Surface.ScrollBy(0, -wheelRows)
		}
		return
	case tea.MouseButtonWheelDown:
		if msg.Shift {
			m.Surface.ScrollBy(1, 0)
		} else {
			m.Surface.ScrollBy(0, wheelRows)
		}
		return
	case tea.MouseButtonWheelLeft:
		m.Surface.ScrollBy(-1, 0)
		return
	case tea.MouseButtonWheelRight:
		m.Surface.ScrollBy(1, 0)
		return
	}

	stage := m.Cells.Stage()
	switch msg.Action {
	case tea.MouseActionMotion:
		if px, py, ok := m.Surface.StagePoint(msg.X, msg.Y); ok {
			stage.PointerMove(px, py)
		}

	case tea.MouseActionPress:
		button, ok := pointerButton(msg.Button)
		if !ok || overEditor(m, msg.X, msg.Y) {
			return
		}
		hit := false
		if px, py, ok := m.Surface.StagePoint(msg.X, msg.Y); ok {
			hit = stage.PointerDown(px, py, button)
		}
		if !hit || button != scene.ButtonPrimary {
			m.Editor.Blur()
		}
	}
}

// overLogPane reports whether screen row y belongs to the open log pane.
func overLogPane(m *model.Model, y int) bool {
	if m.LogPaneHeight() == 0 {
		return false
	}
	return y >= m.LogPaneTop() && y < m.Height-surface.StatusRows
}

func pointerButton(b tea.MouseButton) (scene.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return scene.ButtonPrimary, true
	case tea.MouseButtonMiddle:
		return scene.ButtonAuxiliary, true
	case tea.MouseButtonRight:
		return scene.ButtonSecondary, true
	}
	return 0, false
}

// overEditor reports whether the terminal cell (x, y) is covered by the
// attached editor.
func overEditor(m *model.Model, x, y int) bool {
	if !m.Editor.Attached() {
		return false
	}
	left, top := m.Surface.ToScreen(m.Editor.Position())
	return y == top && x >= left && x < left+m.Editor.Columns()
}
