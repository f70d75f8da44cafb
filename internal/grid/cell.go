package grid

import (
	"fmt"

	"gridctl/internal/scene"
)

// Default grid dimensions.
const (
	DefaultColumns    = 100
	DefaultRows       = 100
	DefaultCellWidth  = 60
	DefaultCellHeight = 20
)

// Coord addresses a cell by column and row.
type Coord struct {
	Column int
	Row    int
}

// Key returns the label the rendered unit of the cell is stored under.
func (c Coord) Key() string {
	return fmt.Sprintf("col%drow%d", c.Column, c.Row)
}

// String makes Coord satisfy the fmt.Stringer interface.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Column, c.Row)
}

// Geometry is the fixed shape of the grid in cells and pixels.
type Geometry struct {
	Columns    int
	Rows       int
	CellWidth  int
	CellHeight int
}

// DefaultGeometry returns the 100x100 grid of 60x20 pixel cells.
func DefaultGeometry() Geometry {
	return Geometry{
		Columns:    DefaultColumns,
		Rows:       DefaultRows,
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
	}
}

// Contains reports whether c addresses a cell of the grid.
func (g Geometry) Contains(c Coord) bool {
	return c.Column >= 0 && c.Column < g.Columns && c.Row >= 0 && c.Row < g.Rows
}

// Rect returns the pixel rectangle of the cell at c.
func (g Geometry) Rect(c Coord) scene.Rect {
	return scene.Rect{
		X:      float64(c.Column * g.CellWidth),
		Y:      float64(c.Row * g.CellHeight),
		Width:  float64(g.CellWidth),
		Height: float64(g.CellHeight),
	}
}

// Width returns the grid width in pixels.
func (g Geometry) Width() int { return g.Columns * g.CellWidth }

// Height returns the grid height in pixels.
func (g Geometry) Height() int { return g.Rows * g.CellHeight }

// FontSize is the label font size derived from the cell height.
func (g Geometry) FontSize() float64 { return float64(g.CellHeight - 4) }

// Cell is the metadata a rendered unit carries: its position and the
// original, untruncated text.
type Cell struct {
	Coord
	Text string
}

// CellOf returns the cell metadata stamped on a rendered unit.
func CellOf(n *scene.Node) (Cell, bool) {
	if n == nil {
		return Cell{}, false
	}
	c, ok := n.Data.(Cell)
	return c, ok
}

// CoordinateText is the initial text of a cell: "column-row".
func CoordinateText(c Coord) string {
	return fmt.Sprintf("%d-%d", c.Column, c.Row)
}

// BlankText leaves every cell empty.
func BlankText(Coord) string { return "" }
