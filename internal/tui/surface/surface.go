// Package surface maps the pixel grid onto a terminal screen.
//
// One terminal column is half a cell height wide and one terminal row is a
// full cell height tall, so the default 60x20 pixel cell is six columns by
// one row. Scrolling is kept in pixels, like a browser surface, but always
// lands on whole cells.
package surface

import (
	"strconv"

	"gridctl/internal/focus"
	"gridctl/internal/grid"
	"gridctl/internal/scene"
)

// Screen rows taken by the column header and the status bar.
const (
	HeaderRows = 1
	StatusRows = 1
)

// Surface is the scrollable terminal area the grid is drawn into.
type Surface struct {
	geom grid.Geometry

	// Size in screen cells
	width  int
	height int

	// Scroll offsets in pixels, multiples of the cell size
	scrollLeft int
	scrollTop  int

	title     string
	listeners []func()
}

var _ focus.Surface = (*Surface)(nil)

// New creates a surface for the grid. The screen size is unknown until the
// first Resize.
func New(geom grid.Geometry) *Surface {
	return &Surface{geom: geom}
}

// Geometry returns the grid geometry the surface was built for.
func (s *Surface) Geometry() grid.Geometry {
	return s.geom
}

// ColumnPx is the pixel width of one terminal column.
func (s *Surface) ColumnPx() int {
	px := s.geom.CellHeight / 2
	if px < 1 {
		return 1
	}
	return px
}

// RowPx is the pixel height of one terminal row.
func (s *Surface) RowPx() int {
	if s.geom.CellHeight < 1 {
		return 1
	}
	return s.geom.CellHeight
}

// CellColumns is the number of terminal columns one cell occupies.
func (s *Surface) CellColumns() int {
	n := s.geom.CellWidth / s.ColumnPx()
	if n < 1 {
		return 1
	}
	return n
}

// GutterColumns is the width of the row header on the left.
func (s *Surface) GutterColumns() int {
	return len(strconv.Itoa(s.geom.Rows-1)) + 1
}

// Resize updates the screen size and clamps the scroll offsets to it,
// notifying scroll listeners when the clamp moved them.
func (s *Surface) Resize(width, height int) {
	s.width, s.height = width, height
	s.ScrollTo(s.scrollLeft, s.scrollTop)
}

// Size returns the screen size in columns and rows.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// ViewportSize returns the screen area left for cells, in columns and rows.
func (s *Surface) ViewportSize() (columns, rows int) {
	columns = s.width - s.GutterColumns()
	rows = s.height - HeaderRows - StatusRows
	if columns < 0 {
		columns = 0
	}
	if rows < 0 {
		rows = 0
	}
	return columns, rows
}

// VisibleCells returns how many whole cells fit the viewport, at least one
// in each direction.
func (s *Surface) VisibleCells() (columns, rows int) {
	vc, vr := s.ViewportSize()
	columns = vc / s.CellColumns()
	if columns < 1 {
		columns = 1
	}
	rows = vr
	if rows < 1 {
		rows = 1
	}
	return columns, rows
}

// FirstVisible returns the cell at the top-left of the viewport.
func (s *Surface) FirstVisible() grid.Coord {
	return grid.Coord{
		Column: s.scrollLeft / s.geom.CellWidth,
		Row:    s.scrollTop / s.geom.CellHeight,
	}
}

// ScrollOffset returns the scroll offsets in pixels.
func (s *Surface) ScrollOffset() (left, top int) {
	return s.scrollLeft, s.scrollTop
}

// Bounds returns the viewport rectangle in screen pixels.
func (s *Surface) Bounds() scene.Rect {
	vc, vr := s.ViewportSize()
	return scene.Rect{
		X:      float64(s.GutterColumns() * s.ColumnPx()),
		Y:      float64(HeaderRows * s.RowPx()),
		Width:  float64(vc * s.ColumnPx()),
		Height: float64(vr * s.RowPx()),
	}
}

// SetTitle sets the tooltip text.
func (s *Surface) SetTitle(title string) {
	s.title = title
}

// Title returns the tooltip text.
func (s *Surface) Title() string {
	return s.title
}

// OnScroll registers fn to run after every scroll change.
func (s *Surface) OnScroll(fn func()) {
	s.listeners = append(s.listeners, fn)
}

// ScrollBy scrolls by whole cells. It reports whether the offsets changed.
func (s *Surface) ScrollBy(columns, rows int) bool {
	return s.ScrollTo(s.scrollLeft+columns*s.geom.CellWidth, s.scrollTop+rows*s.geom.CellHeight)
}

// ScrollTo scrolls to the given pixel offsets, snapped down to whole cells
// and clamped so the last cell can still be reached. It reports whether the
// offsets changed.
func (s *Surface) ScrollTo(left, top int) bool {
	if !s.scrollTo(left, top) {
		return false
	}
	for _, fn := range s.listeners {
		fn()
	}
	return true
}

func (s *Surface) scrollTo(left, top int) bool {
	left = s.clamp(left, s.geom.CellWidth, s.geom.Columns, s.visibleColumns())
	top = s.clamp(top, s.geom.CellHeight, s.geom.Rows, s.visibleRows())
	if left == s.scrollLeft && top == s.scrollTop {
		return false
	}
	s.scrollLeft, s.scrollTop = left, top
	return true
}

func (s *Surface) visibleColumns() int {
	c, _ := s.VisibleCells()
	return c
}

func (s *Surface) visibleRows() int {
	_, r := s.VisibleCells()
	return r
}

func (s *Surface) clamp(offset, cellSize, count, visible int) int {
	if cellSize <= 0 {
		return 0
	}
	first := offset / cellSize
	if maxFirst := count - visible; first > maxFirst {
		first = maxFirst
	}
	if first < 0 {
		first = 0
	}
	return first * cellSize
}

// Reveal scrolls the least amount needed to bring the grid rectangle into
// view. It reports whether the offsets changed.
func (s *Surface) Reveal(r scene.Rect) bool {
	cols, rows := s.VisibleCells()
	first := s.FirstVisible()

	col := int(r.X) / s.geom.CellWidth
	row := int(r.Y) / s.geom.CellHeight

	left, top := first.Column, first.Row
	switch {
	case col < first.Column:
		left = col
	case col >= first.Column+cols:
		left = col - cols + 1
	}
	switch {
	case row < first.Row:
		top = row
	case row >= first.Row+rows:
		top = row - rows + 1
	}
	return s.ScrollTo(left*s.geom.CellWidth, top*s.geom.CellHeight)
}

// ToScreen converts screen pixels to a terminal column and row.
func (s *Surface) ToScreen(leftPx, topPx int) (x, y int) {
	return floorDiv(leftPx, s.ColumnPx()), floorDiv(topPx, s.RowPx())
}

// StagePoint converts a terminal position to the grid pixel at the centre of
// that terminal cell. It reports false outside the viewport.
func (s *Surface) StagePoint(x, y int) (px, py float64, ok bool) {
	vc, vr := s.ViewportSize()
	vx := x - s.GutterColumns()
	vy := y - HeaderRows
	if vx < 0 || vy < 0 || vx >= vc || vy >= vr {
		return 0, 0, false
	}
	colPx, rowPx := s.ColumnPx(), s.RowPx()
	px = float64(vx*colPx+s.scrollLeft) + float64(colPx)/2
	py = float64(vy*rowPx+s.scrollTop) + float64(rowPx)/2
	return px, py, true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
