package surface

import (
	"gridctl/internal/grid"
	"gridctl/internal/scene"

	"github.com/mattn/go-runewidth"
)

// CellMeasurer measures text by the terminal columns it takes, so labels are
// fitted to what the terminal can actually show.
type CellMeasurer struct {
	columnPx float64
}

var _ scene.Measurer = CellMeasurer{}

// NewCellMeasurer returns a measurer for the grid's column width.
func NewCellMeasurer(geom grid.Geometry) CellMeasurer {
	return CellMeasurer{columnPx: float64(New(geom).ColumnPx())}
}

// MeasureText implements scene.Measurer. Font size and family do not change
// terminal widths.
func (m CellMeasurer) MeasureText(text string, fontSize float64, family string) (float64, float64) {
	return float64(runewidth.StringWidth(text)) * m.columnPx, fontSize
}
