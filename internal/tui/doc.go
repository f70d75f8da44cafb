// Package tui provides the Terminal User Interface for gridctl.
//
// The TUI hosts the editable grid in a terminal using the Bubble Tea
// framework. The grid itself (cells, fitting, focus) lives in
// internal/grid and internal/focus; the packages below only adapt it to a
// character display.
//
// # Architecture
//
// The TUI follows a Model-View-Controller (MVC) pattern:
//
//   - Model (internal/tui/model/): wires the scene, cell factory, focus
//     controller, overlay editor, scroll surface and frame queue together
//   - View (internal/tui/view/): renders headers, visible cells, the overlay
//     and the status bar
//   - Controller (internal/tui/controller/): turns key, mouse, resize and
//     frame messages into calls on the model
//
// Supporting packages:
//
//   - surface: the scrollable viewport in stage pixels, mapped onto terminal
//     columns and rows
//   - editor: the single overlay text input reused for every cell
//   - design: colours and styles with light/dark support
//   - components: column header, row labels and status bar
//   - utils: width-aware string helpers
//
// # Terminal Mapping
//
// One terminal row is one cell height and one terminal column is half of it,
// so a 60x20 cell is six columns wide. Scrolling moves whole cells.
//
// # Frames
//
// Work that must wait for the next paint, such as focusing the editor after it
// is placed or moving it after a scroll, is queued on a frame.Queue. The model
// schedules a tick for the queue whenever it holds callbacks and flushes it
// when the tick arrives. Keys typed after a cell is picked but before its
// focus frame runs are held and replayed into the editor once it is focused.
//
// # Keyboard Navigation
//
// While a cell is being edited:
//
//   - Tab/Shift+Tab: Next or previous cell in row order, wrapping
//   - Arrow keys: Neighbouring cell, wrapping at the grid edges
//   - Esc: Stop editing and keep the text
//
// Otherwise:
//
//   - Enter/Tab: Edit the last cell again
//   - Arrow keys or h/j/k/l: Scroll
//   - PgUp/PgDown, Home/g: Scroll by page, back to the origin
//   - D: Toggle dark/light mode
//   - L: Toggle the activity log pane
//   - z: Toggle debug log lines
//   - q/Ctrl+C: Quit application
//
// # Usage Example
//
//	p, err := controller.NewProgram(cfg, debugMode, logChannel)
//	if err != nil {
//	    return err
//	}
//
//	// Run the TUI (blocks until user quits)
//	if _, err := p.Run(); err != nil {
//	    return err
//	}
package tui
