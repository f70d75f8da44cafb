package view

import (
	"strings"

	"gridctl/internal/grid"
	"gridctl/internal/tui/components"
	"gridctl/internal/tui/design"
	"gridctl/internal/tui/model"
	"gridctl/internal/tui/surface"
	"gridctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	if m.Quitting {
		return ""
	}
	if m.Width == 0 || m.Height == 0 {
		return design.StatusBarStyle.Render("Initializing... (waiting for window size)")
	}

	lines := make([]string, 0, m.Height)
	lines = append(lines, renderHeader(m))
	lines = append(lines, renderRows(m)...)
	if m.LogPaneHeight() > 0 {
		lines = append(lines, renderLogPane(m)...)
	}
	lines = append(lines, renderStatusBar(m))
	if len(lines) > m.Height {
		lines = lines[:m.Height]
	}
	return strings.Join(lines, "\n")
}

// activeCell returns the focused cell, if any.
func activeCell(m *model.Model) (grid.Coord, bool) {
	if !m.Editor.Attached() {
		return grid.Coord{}, false
	}
	return m.Editor.Cell()
}

func renderHeader(m *model.Model) string {
	first := m.Surface.FirstVisible()
	cols := visibleColumns(m)
	active := -1
	if c, ok := activeCell(m); ok {
		active = c.Column
	}
	return components.ColumnHeader{
		Width:       m.Width,
		Gutter:      m.Surface.GutterColumns(),
		CellColumns: m.Surface.CellColumns(),
		First:       first.Column,
		Count:       cols,
		Active:      active,
	}.Render()
}

// visibleColumns is the number of grid columns drawn, which stops at the last
// grid column even when the terminal is wider.
func visibleColumns(m *model.Model) int {
	cols, _ := m.Surface.VisibleCells()
	first := m.Surface.FirstVisible()
	if rest := m.Geometry.Columns - first.Column; cols > rest {
		cols = rest
	}
	return cols
}

func renderRows(m *model.Model) []string {
	_, viewRows := m.Surface.ViewportSize()
	first := m.Surface.FirstVisible()
	cols := visibleColumns(m)
	cc := m.Surface.CellColumns()
	gutter := m.Surface.GutterColumns()

	overlayX, overlayY, hasOverlay := overlayScreenPos(m)
	activeRow := -1
	if c, ok := activeCell(m); ok {
		activeRow = c.Row
	}

	lines := make([]string, 0, viewRows)
	for i := 0; i < viewRows; i++ {
		row := first.Row + i
		if row >= m.Geometry.Rows {
			lines = append(lines, strings.Repeat(" ", m.Width))
			continue
		}
		screenY := surface.HeaderRows + i

		var b strings.Builder
		b.WriteString(components.RowLabel(row, gutter, row == activeRow))
		for j := 0; j < cols; j++ {
			screenX := gutter + j*cc
			if hasOverlay && screenY == overlayY && overlayX >= screenX && overlayX < screenX+cc {
				b.WriteString(renderOverlay(m, cc))
				continue
			}
			b.WriteString(renderCell(m, grid.Coord{Column: first.Column + j, Row: row}, cc))
		}
		if rest := m.Width - gutter - cols*cc; rest > 0 {
			b.WriteString(strings.Repeat(" ", rest))
		}
		lines = append(lines, b.String())
	}
	return lines
}

func renderCell(m *model.Model, c grid.Coord, width int) string {
	text := ""
	if unit, ok := m.Cells.Find(c.Key()); ok {
		text = grid.DisplayText(unit)
	}
	style := design.CellStyle
	if m.Config.UI.ZebraEnabled() && c.Row%2 == 1 {
		style = design.ZebraCellStyle
	}
	return style.Render(utils.FitString(text, width))
}

// renderOverlay draws the editor in place of the focused cell, padded to the
// cell width.
func renderOverlay(m *model.Model, width int) string {
	v := m.Editor.View()
	if w := lipgloss.Width(v); w < width {
		v += strings.Repeat(" ", width-w)
	}
	return design.OverlayStyle.Render(v)
}

// overlayScreenPos returns the terminal cell of the editor's top-left corner.
func overlayScreenPos(m *model.Model) (x, y int, ok bool) {
	if !m.Editor.Attached() {
		return 0, 0, false
	}
	x, y = m.Surface.ToScreen(m.Editor.Position())
	return x, y, true
}

// renderLogPane draws a title row followed by the activity log viewport.
func renderLogPane(m *model.Model) []string {
	title := design.LogPaneTitleStyle.Render(utils.FitString(" Activity log (L to hide)", m.Width))
	return append([]string{title}, strings.Split(m.LogViewport.View(), "\n")...)
}

func renderStatusBar(m *model.Model) string {
	bar := components.NewStatusBar(m.Width).
		WithTitle(m.Surface.Title()).
		WithLog(m.LastLog)
	if c, ok := activeCell(m); ok {
		bar.WithAddress(c.String())
	}
	return bar.Render()
}
