package config

import (
	"time"

	"gridctl/internal/grid"
)

// DefaultFontFamily is the family labels are measured in when none is configured.
const DefaultFontFamily = "monospace"

// DefaultFrameInterval approximates one display frame.
const DefaultFrameInterval = 16 * time.Millisecond

// GetDefaultConfig returns the built-in configuration: a 100x100 grid of
// 60x20 pixel cells labelled with their coordinates.
func GetDefaultConfig() GridctlConfig {
	return GridctlConfig{
		Grid: GridConfig{
			Columns:     grid.DefaultColumns,
			Rows:        grid.DefaultRows,
			CellWidth:   grid.DefaultCellWidth,
			CellHeight:  grid.DefaultCellHeight,
			InitialText: InitialTextCoordinates,
		},
		Font: FontConfig{
			Family: DefaultFontFamily,
		},
		UI: UIConfig{
			Measure:       MeasureCells,
			FrameInterval: DefaultFrameInterval,
			Theme:         ThemeAuto,
		},
	}
}

// Geometry converts the grid settings into the grid's geometry.
func (c GridctlConfig) Geometry() grid.Geometry {
	return grid.Geometry{
		Columns:    c.Grid.Columns,
		Rows:       c.Grid.Rows,
		CellWidth:  c.Grid.CellWidth,
		CellHeight: c.Grid.CellHeight,
	}
}

// TextSource returns the initial text function for the configured mode.
func (c GridctlConfig) TextSource() func(grid.Coord) string {
	if c.Grid.InitialText == InitialTextBlank {
		return grid.BlankText
	}
	return grid.CoordinateText
}
