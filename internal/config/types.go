package config

import (
	"time"
)

// GridctlConfig is the top-level configuration structure for gridctl.
type GridctlConfig struct {
	Grid GridConfig `yaml:"grid"`
	Font FontConfig `yaml:"font"`
	UI   UIConfig   `yaml:"ui"`
}

// InitialText selects what a cell holds before it is first edited.
type InitialText string

const (
	// InitialTextCoordinates fills every cell with "column-row".
	InitialTextCoordinates InitialText = "coordinates"
	// InitialTextBlank leaves every cell empty.
	InitialTextBlank InitialText = "blank"
)

// GridConfig sizes the grid. Cell sizes are in pixels.
type GridConfig struct {
	Columns     int         `yaml:"columns,omitempty"`
	Rows        int         `yaml:"rows,omitempty"`
	CellWidth   int         `yaml:"cellWidth,omitempty"`
	CellHeight  int         `yaml:"cellHeight,omitempty"`
	InitialText InitialText `yaml:"initialText,omitempty"`
}

// FontConfig names the font family labels are measured and drawn with.
type FontConfig struct {
	Family string `yaml:"family,omitempty"` // e.g. "monospace", "Go Mono", "sans-serif"
}

// MeasureMode selects how label widths are measured in the terminal.
type MeasureMode string

const (
	// MeasureCells measures by terminal columns, matching what the terminal shows.
	MeasureCells MeasureMode = "cells"
	// MeasureFont measures with the embedded Go fonts, matching the PNG snapshot.
	MeasureFont MeasureMode = "font"
)

// Theme selects the colour palette of the terminal grid.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// UIConfig holds terminal host settings.
type UIConfig struct {
	Measure       MeasureMode   `yaml:"measure,omitempty"`
	FrameInterval time.Duration `yaml:"frameInterval,omitempty"` // delay standing in for one animation frame
	Mouse         *bool         `yaml:"mouse,omitempty"`         // nil keeps the default
	Zebra         *bool         `yaml:"zebra,omitempty"`         // alternate row shading
	Theme         Theme         `yaml:"theme,omitempty"`
}

// MouseEnabled reports whether mouse support is on.
func (u UIConfig) MouseEnabled() bool {
	return u.Mouse == nil || *u.Mouse
}

// ZebraEnabled reports whether alternate rows are shaded.
func (u UIConfig) ZebraEnabled() bool {
	return u.Zebra == nil || *u.Zebra
}
