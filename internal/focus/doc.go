// Package focus decides which grid cell is being edited.
//
// A Controller moves a single overlay editor between cells. Focusing a cell
// copies its full text into the overlay, places the overlay over the cell and
// detaches the cell's rendered unit from the grid scene; the overlay is given
// input focus and its text selected one frame later, once it has been laid
// out. Committing (BlurAndCommit) rebuilds the unit from the overlay value so
// the label is fitted again, then hides the overlay.
//
// # Navigation
//
// Tab and Shift+Tab walk the grid in row order and wrap from the last cell to
// the first and back. Arrow keys move to the neighbouring cell and wrap at the
// edges of the current row or column. Next computes the target cell and is a
// pure function of the geometry.
//
// # Capabilities
//
// The controller never talks to a display directly. Hosts provide:
//
//   - Overlay: the editor box (value, placement, focus, key and blur events)
//   - Surface: the scrollable area the grid is drawn in
//   - Scheduler: "run on the next frame"
//
// internal/headless implements them in memory and internal/tui implements
// them for a terminal.
//
// All methods must be called from the host's event loop.
package focus
