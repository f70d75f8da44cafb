// Package grid holds the cell model of the editable grid: coordinates and
// geometry, the text fitter that cuts labels to the cell width, the factory
// that builds each cell's rendered unit and the scene that owns those units
// by key.
//
// A unit's metadata always carries the full text; only the label is fitted.
package grid
