// Package editor is the terminal overlay editor placed over the focused cell.
package editor

import (
	"gridctl/internal/focus"
	"gridctl/internal/grid"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Editor is a focus.Overlay backed by a bubbles text input.
//
// The terminal has no text selection, so Select marks the whole value as
// selected: the next typed character replaces it and backspace clears it.
type Editor struct {
	input    textinput.Model
	columnPx int

	title   string
	cell    grid.Coord
	hasCell bool

	width, height int
	left, top     int

	attached bool
	selected bool

	blurListeners  []func()
	keyListeners   []func(focus.KeyEvent) bool
	focusListeners []func()

	pending []tea.Cmd

	// SelectionStyle renders a selected value.
	SelectionStyle lipgloss.Style
}

var _ focus.Overlay = (*Editor)(nil)

// New creates a detached editor. columnPx is the pixel width of one terminal
// column and converts the overlay size into a text input width.
func New(columnPx int) *Editor {
	if columnPx < 1 {
		columnPx = 1
	}
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 0
	return &Editor{
		input:          in,
		columnPx:       columnPx,
		SelectionStyle: lipgloss.NewStyle().Reverse(true),
	}
}

func (e *Editor) Value() string { return e.input.Value() }

// SetValue replaces the value and drops any selection.
func (e *Editor) SetValue(v string) {
	e.input.SetValue(v)
	e.input.CursorEnd()
	e.selected = false
}

func (e *Editor) Title() string         { return e.title }
func (e *Editor) SetTitle(title string) { e.title = title }

func (e *Editor) SetCell(c grid.Coord)     { e.cell, e.hasCell = c, true }
func (e *Editor) Cell() (grid.Coord, bool) { return e.cell, e.hasCell }

// SetSize sets the overlay size in pixels.
func (e *Editor) SetSize(width, height int) {
	e.width, e.height = width, height
	e.input.Width = e.Columns() - 1
	if e.input.Width < 1 {
		e.input.Width = 1
	}
}

// Size returns the overlay size in pixels.
func (e *Editor) Size() (width, height int) { return e.width, e.height }

// Columns is the overlay width in terminal columns.
func (e *Editor) Columns() int {
	c := e.width / e.columnPx
	if c < 1 {
		return 1
	}
	return c
}

// SetPosition sets the overlay's top-left corner in screen pixels.
func (e *Editor) SetPosition(left, top int) { e.left, e.top = left, top }

// Position returns the overlay's top-left corner in screen pixels.
func (e *Editor) Position() (left, top int) { return e.left, e.top }

func (e *Editor) Attach()        { e.attached = true }
func (e *Editor) Attached() bool { return e.attached }

// Detach removes the editor from the screen. A focused editor loses focus.
func (e *Editor) Detach() {
	e.attached = false
	e.Blur()
}

// Focus gives the editor input focus. It does nothing when detached.
func (e *Editor) Focus() {
	if !e.attached {
		return
	}
	e.pending = append(e.pending, e.input.Focus())
	for _, fn := range e.focusListeners {
		fn()
	}
}

// Focused reports whether the editor has input focus.
func (e *Editor) Focused() bool { return e.input.Focused() }

// Blur drops input focus and notifies blur listeners if it was focused.
func (e *Editor) Blur() {
	if !e.input.Focused() {
		return
	}
	e.input.Blur()
	e.selected = false
	for _, fn := range e.blurListeners {
		fn()
	}
}

// Select selects the whole value.
func (e *Editor) Select() {
	if !e.input.Focused() {
		return
	}
	e.selected = true
	e.input.CursorEnd()
}

// Selected reports whether the whole value is selected.
func (e *Editor) Selected() bool { return e.selected }

func (e *Editor) OnBlur(fn func()) { e.blurListeners = append(e.blurListeners, fn) }

func (e *Editor) OnKeyDown(fn func(focus.KeyEvent) bool) {
	e.keyListeners = append(e.keyListeners, fn)
}

// OnFocus subscribes fn to the editor gaining input focus.
func (e *Editor) OnFocus(fn func()) { e.focusListeners = append(e.focusListeners, fn) }

// Cmd returns the commands collected since the last call, such as the
// cursor blink started by Focus.
func (e *Editor) Cmd() tea.Cmd {
	if len(e.pending) == 0 {
		return nil
	}
	cmd := tea.Batch(e.pending...)
	e.pending = nil
	return cmd
}

// Update handles a message while the editor is focused. Key listeners see a
// key first and may prevent the text input from handling it.
func (e *Editor) Update(msg tea.Msg) tea.Cmd {
	if !e.attached || !e.input.Focused() {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		e.input, cmd = e.input.Update(msg)
		return cmd
	}

	if e.dispatch(KeyEventOf(keyMsg)) {
		return e.Cmd()
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		e.Blur()
		return nil
	case tea.KeyBackspace, tea.KeyDelete:
		if e.selected {
			e.input.SetValue("")
			e.selected = false
			return nil
		}
	case tea.KeyRunes, tea.KeySpace:
		if e.selected {
			e.input.SetValue("")
		}
	}
	e.selected = false

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return cmd
}

func (e *Editor) dispatch(ev focus.KeyEvent) bool {
	prevented := false
	// Listeners may move focus; later listeners still see the key.
	for _, fn := range e.keyListeners {
		if fn(ev) {
			prevented = true
		}
	}
	return prevented
}

// KeyEventOf converts a terminal key press into a controller key event.
func KeyEventOf(msg tea.KeyMsg) focus.KeyEvent {
	switch msg.Type {
	case tea.KeyTab:
		return focus.KeyEvent{Key: focus.KeyTab}
	case tea.KeyShiftTab:
		return focus.KeyEvent{Key: focus.KeyTab, Shift: true}
	case tea.KeyLeft:
		return focus.KeyEvent{Key: focus.KeyLeft}
	case tea.KeyRight:
		return focus.KeyEvent{Key: focus.KeyRight}
	case tea.KeyUp:
		return focus.KeyEvent{Key: focus.KeyUp}
	case tea.KeyDown:
		return focus.KeyEvent{Key: focus.KeyDown}
	case tea.KeyShiftLeft:
		return focus.KeyEvent{Key: focus.KeyLeft, Shift: true}
	case tea.KeyShiftRight:
		return focus.KeyEvent{Key: focus.KeyRight, Shift: true}
	case tea.KeyShiftUp:
		return focus.KeyEvent{Key: focus.KeyUp, Shift: true}
	case tea.KeyShiftDown:
		return focus.KeyEvent{Key: focus.KeyDown, Shift: true}
	}
	return focus.KeyEvent{Key: focus.KeyOther}
}

// View renders the editor exactly Columns() terminal columns wide.
func (e *Editor) View() string {
	cols := e.Columns()
	if e.selected {
		v := runewidth.Truncate(e.input.Value(), cols, "")
		return e.SelectionStyle.Render(runewidth.FillRight(v, cols))
	}
	v := e.input.View()
	w := lipgloss.Width(v)
	if w < cols {
		return v + runewidth.FillRight("", cols-w)
	}
	return v
}
