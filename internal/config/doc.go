// Package config provides configuration management for gridctl.
//
// Configuration is loaded from YAML files and merged in order, with later
// sources overriding earlier ones:
//
//  1. Default configuration (compiled in): a 100x100 grid of 60x20 pixel
//     cells labelled with their coordinates.
//  2. User configuration (~/.config/gridctl/config.yaml).
//  3. Project configuration (./.gridctl/config.yaml).
//
// A single directory can be loaded instead with LoadConfigFromPath, which is
// what the --config-path flag does.
//
// # Configuration Structure
//
//	grid:
//	  columns: 100
//	  rows: 100
//	  cellWidth: 60
//	  cellHeight: 20
//	  initialText: coordinates   # or "blank"
//	font:
//	  family: monospace
//	ui:
//	  measure: cells             # or "font"
//	  frameInterval: 16ms
//	  mouse: true
//	  zebra: true
//	  theme: auto                # "dark" or "light"
//
// Zero values in a layer keep the setting of the layer below. The merged
// result is checked by Validate before it is returned.
package config
