// Package scene provides the retained scene tree the grid renders into.
//
// A Stage holds labelled top-level nodes. Containers group graphics and text
// nodes; interactive leaves take part in hit-testing and receive pointer
// events dispatched through Stage.PointerMove and Stage.PointerDown.
//
// The package only records geometry. Turning a stage into pixels or terminal
// cells is left to the hosts (see internal/canvas and internal/tui/view), and
// text measurement is delegated to a Measurer.
package scene
