package model

import (
	"time"

	"gridctl/internal/config"
	"gridctl/internal/focus"
	"gridctl/internal/frame"
	"gridctl/internal/grid"
	"gridctl/internal/tui/editor"
	"gridctl/internal/tui/surface"
	"gridctl/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// MaxActivityLogLines caps the in-memory activity log.
const MaxActivityLogLines = 200

// KeyMap defines the bindings handled outside the overlay editor.
type KeyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	Refocus     key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	ToggleDark  key.Binding
	ToggleDebug key.Binding
	ToggleLog   key.Binding
}

// Model is the state of the terminal grid.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	Config   config.GridctlConfig
	Geometry grid.Geometry

	Cells      *grid.Scene
	Factory    *grid.Factory
	Controller *focus.Controller
	Editor     *editor.Editor
	Surface    *surface.Surface
	Frames     *frame.Queue

	// FrameInterval is the delay standing in for one display frame.
	FrameInterval time.Duration
	// FrameScheduled is set while a frame tick is in flight.
	FrameScheduled bool

	// PendingKeys holds keys typed between focusing a cell and the editor
	// taking input focus on the next frame.
	PendingKeys []tea.KeyMsg

	Keys         KeyMap
	MouseEnabled bool
	DarkMode     bool
	DebugMode    bool
	Quitting     bool

	LogChannel  <-chan logging.LogEntry
	ActivityLog []string
	LastLog     *logging.LogEntry

	// Log pane below the grid
	ShowLog     bool
	LogViewport viewport.Model
}

// FrameMsg marks the start of a display frame.
type FrameMsg struct {
	At time.Time
}

// NewLogEntryMsg carries a log entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}
