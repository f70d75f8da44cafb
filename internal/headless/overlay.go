// Package headless provides in-memory overlay and surface implementations for
// running the focus controller without a display.
package headless

import (
	"gridctl/internal/focus"
	"gridctl/internal/grid"
)

// Overlay is an in-memory focus.Overlay.
type Overlay struct {
	value    string
	title    string
	cell     grid.Coord
	hasCell  bool
	width    int
	height   int
	left     int
	top      int
	attached bool
	focused  bool
	selected bool

	blurListeners []func()
	keyListeners  []func(focus.KeyEvent) bool
}

// NewOverlay returns a detached, empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Value returns the text in the overlay.
func (o *Overlay) Value() string { return o.value }

// SetValue replaces the text and drops any selection.
func (o *Overlay) SetValue(v string) { o.value = v; o.selected = false }

// Title returns the tooltip text.
func (o *Overlay) Title() string { return o.title }

// SetTitle sets the tooltip text.
func (o *Overlay) SetTitle(title string) { o.title = title }

// SetCell records the cell being edited.
func (o *Overlay) SetCell(c grid.Coord) { o.cell, o.hasCell = c, true }

// Cell returns the cell being edited, if one was ever set.
func (o *Overlay) Cell() (grid.Coord, bool) { return o.cell, o.hasCell }

// SetSize sets the box size in pixels.
func (o *Overlay) SetSize(w, h int) { o.width, o.height = w, h }

// Size returns the box size in pixels.
func (o *Overlay) Size() (int, int) { return o.width, o.height }

// SetPosition places the box's top-left corner, in surface pixels.
func (o *Overlay) SetPosition(l, t int) { o.left, o.top = l, t }

// Position returns the box's top-left corner.
func (o *Overlay) Position() (int, int) { return o.left, o.top }

// Attach adds the overlay to the surface.
func (o *Overlay) Attach() { o.attached = true }

// Attached reports whether the overlay is on the surface.
func (o *Overlay) Attached() bool { return o.attached }

// Focused reports whether the overlay has input focus.
func (o *Overlay) Focused() bool { return o.focused }

// Selected reports whether the whole value is selected.
func (o *Overlay) Selected() bool { return o.selected }

// Detach removes the overlay from the surface. A focused overlay loses focus.
func (o *Overlay) Detach() {
	o.attached = false
	o.Blur()
}

// Focus gives the overlay input focus when attached.
func (o *Overlay) Focus() {
	if o.attached {
		o.focused = true
	}
}

// Blur drops input focus and notifies blur listeners if it was focused.
func (o *Overlay) Blur() {
	if !o.focused {
		return
	}
	o.focused = false
	o.selected = false
	for _, fn := range o.blurListeners {
		fn()
	}
}

// Select marks the whole value as selected.
func (o *Overlay) Select() {
	if o.focused {
		o.selected = true
	}
}

// OnBlur registers fn to run whenever the overlay loses input focus.
func (o *Overlay) OnBlur(fn func()) { o.blurListeners = append(o.blurListeners, fn) }

// OnKeyDown registers a key listener. Returning true prevents the default.
func (o *Overlay) OnKeyDown(fn func(focus.KeyEvent) bool) {
	o.keyListeners = append(o.keyListeners, fn)
}

// Type replaces the value as a user would by typing into the focused overlay.
// Typing into a selection replaces it.
func (o *Overlay) Type(text string) {
	if !o.focused {
		return
	}
	if o.selected {
		o.value = ""
		o.selected = false
	}
	o.value += text
}

// Press delivers a key to the listeners. It reports whether a listener
// prevented the default.
func (o *Overlay) Press(ev focus.KeyEvent) bool {
	if !o.attached {
		return false
	}
	prevented := false
	for _, fn := range o.keyListeners {
		if fn(ev) {
			prevented = true
		}
	}
	return prevented
}

var _ focus.Overlay = (*Overlay)(nil)
