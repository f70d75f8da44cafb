package components

import (
	"strconv"
	"strings"

	"gridctl/internal/tui/design"
	"gridctl/internal/tui/utils"
)

// ColumnHeader is the row of column numbers above the grid.
type ColumnHeader struct {
	Width       int // total screen width
	Gutter      int // columns taken by the row labels
	CellColumns int // screen columns per grid column
	First       int // first visible grid column
	Count       int // visible grid columns
	Active      int // highlighted grid column, -1 for none
}

// Render returns the styled header line.
func (h ColumnHeader) Render() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", h.Gutter))
	used := h.Gutter
	for i := 0; i < h.Count; i++ {
		col := h.First + i
		label := utils.CenterString(strconv.Itoa(col), h.CellColumns)
		if col == h.Active {
			b.WriteString(design.ActiveHeaderStyle.Render(label))
		} else {
			b.WriteString(design.HeaderStyle.Render(label))
		}
		used += h.CellColumns
	}
	if rest := h.Width - used; rest > 0 {
		b.WriteString(strings.Repeat(" ", rest))
	}
	return b.String()
}

// RowLabel renders the row number in the gutter, right aligned with one
// column of spacing.
func RowLabel(row, gutter int, active bool) string {
	if gutter <= 0 {
		return ""
	}
	label := utils.RightAlign(strconv.Itoa(row), gutter-1) + " "
	if active {
		return design.ActiveHeaderStyle.Render(label)
	}
	return design.GutterStyle.Render(label)
}
