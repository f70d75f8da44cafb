package focus

import (
	"gridctl/internal/grid"
	"gridctl/internal/scene"
)

// Key identifies the keys the controller reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// String makes Key satisfy the fmt.Stringer interface.
func (k Key) String() string {
	switch k {
	case KeyTab:
		return "Tab"
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	case KeyUp:
		return "ArrowUp"
	case KeyDown:
		return "ArrowDown"
	default:
		return "Other"
	}
}

// KeyEvent is a key press delivered by the overlay.
type KeyEvent struct {
	Key   Key
	Shift bool
}

// Overlay is the single text editor placed over the focused cell. Hosts
// create it once; the controller reuses it for every focus.
type Overlay interface {
	Value() string
	SetValue(v string)
	SetTitle(title string)

	// SetCell and Cell carry the coordinates of the cell being edited.
	SetCell(c grid.Coord)
	Cell() (grid.Coord, bool)

	SetSize(width, height int)
	SetPosition(left, top int)

	Attach()
	Detach()
	Attached() bool

	Focus()
	Blur()
	Select()

	// OnBlur subscribes fn to the editor losing input focus.
	OnBlur(fn func())
	// OnKeyDown subscribes fn to key presses. A listener returning true
	// prevents the editor's default handling of the key.
	OnKeyDown(fn func(KeyEvent) bool)
}

// Surface is the scrollable host element the grid and the overlay live in.
type Surface interface {
	// ScrollOffset returns the current scroll position in pixels.
	ScrollOffset() (left, top int)
	// Bounds returns the on-screen rectangle of the surface in pixels.
	Bounds() scene.Rect
	// SetTitle sets the tooltip of the surface.
	SetTitle(title string)
	// OnScroll subscribes fn to scroll position changes.
	OnScroll(fn func())
}

// Scheduler runs callbacks after the current paint.
type Scheduler interface {
	RequestFrame(fn func())
}
