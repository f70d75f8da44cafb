package model

import (
	"fmt"
	"time"

	"gridctl/internal/canvas"
	"gridctl/internal/config"
	"gridctl/internal/focus"
	"gridctl/internal/frame"
	"gridctl/internal/grid"
	"gridctl/internal/scene"
	"gridctl/internal/tui/design"
	"gridctl/internal/tui/editor"
	"gridctl/internal/tui/surface"
	"gridctl/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const modelSubsystem = "TUI"

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Refocus: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "edit last cell"),
		),
		ScrollLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "scroll left"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "scroll right"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "scroll to origin"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "toggle debug log lines"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log pane"),
		),
	}
}

// InitializeModel builds the grid, its overlay editor and the focus
// controller, then focuses the first cell.
func InitializeModel(cfg config.GridctlConfig, debugMode bool, logChannel <-chan logging.LogEntry) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	geom := cfg.Geometry()

	measurer, err := newMeasurer(cfg, geom)
	if err != nil {
		return nil, err
	}

	stage := scene.NewStage(float64(geom.Width()), float64(geom.Height()))
	cells := grid.NewScene(stage, geom)
	factory := grid.NewFactory(geom, measurer, cfg.Font.Family)
	surf := surface.New(geom)
	ed := editor.New(surf.ColumnPx())
	ed.SelectionStyle = design.SelectionStyle
	frames := frame.NewQueue()

	ctrl := focus.New(cells, factory, ed, surf, frames)

	// Bring a newly focused cell on screen. Refocusing the same cell after
	// a scroll must not scroll it back.
	var revealed grid.Coord
	hasRevealed := false
	ed.OnFocus(func() {
		c, ok := ed.Cell()
		if !ok || (hasRevealed && c == revealed) {
			return
		}
		revealed, hasRevealed = c, true
		surf.Reveal(geom.Rect(c))
	})

	cells.Populate(factory, cfg.TextSource())
	ctrl.Start()
	logging.Info(modelSubsystem, "Grid ready: %dx%d cells of %dx%d px", geom.Columns, geom.Rows, geom.CellWidth, geom.CellHeight)

	m := &Model{
		Config:        cfg,
		Geometry:      geom,
		Cells:         cells,
		Factory:       factory,
		Controller:    ctrl,
		Editor:        ed,
		Surface:       surf,
		Frames:        frames,
		FrameInterval: cfg.UI.FrameInterval,
		Keys:          DefaultKeyMap(),
		MouseEnabled:  cfg.UI.MouseEnabled(),
		DarkMode:      lipgloss.HasDarkBackground(), // as resolved by design.Initialize
		DebugMode:     debugMode,
		LogChannel:    logChannel,
		LogViewport:   viewport.New(0, 0),
	}
	return m, nil
}

func newMeasurer(cfg config.GridctlConfig, geom grid.Geometry) (scene.Measurer, error) {
	if cfg.UI.Measure == config.MeasureFont {
		fm, err := canvas.NewFontMeasurer()
		if err != nil {
			return nil, fmt.Errorf("failed to load fonts: %w", err)
		}
		return fm, nil
	}
	return surface.NewCellMeasurer(geom), nil
}

// Init starts listening for log entries and runs the first frame.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		ListenForLogEntriesCmd(m.LogChannel),
		m.FrameCmd(),
	)
}

// FrameCmd schedules the next frame when callbacks are waiting for one.
func (m *Model) FrameCmd() tea.Cmd {
	if m.FrameScheduled || m.Frames.Pending() == 0 {
		return nil
	}
	m.FrameScheduled = true
	return tea.Tick(m.FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{At: t}
	})
}

// RunFrame runs the callbacks queued for this frame.
func (m *Model) RunFrame() int {
	m.FrameScheduled = false
	return m.Frames.Flush()
}
