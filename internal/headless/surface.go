package headless

import (
	"gridctl/internal/focus"
	"gridctl/internal/scene"
)

// Surface is an in-memory focus.Surface.
type Surface struct {
	bounds     scene.Rect
	scrollLeft int
	scrollTop  int
	title      string
	listeners  []func()
}

// NewSurface returns a surface occupying bounds.
func NewSurface(bounds scene.Rect) *Surface {
	return &Surface{bounds: bounds}
}

// ScrollOffset returns the scroll position in pixels.
func (s *Surface) ScrollOffset() (int, int) { return s.scrollLeft, s.scrollTop }

// Bounds returns the area the surface occupies.
func (s *Surface) Bounds() scene.Rect { return s.bounds }

// SetTitle sets the tooltip text.
func (s *Surface) SetTitle(title string) { s.title = title }

// Title returns the tooltip text.
func (s *Surface) Title() string { return s.title }

// OnScroll registers fn to run after every scroll.
func (s *Surface) OnScroll(fn func()) { s.listeners = append(s.listeners, fn) }

// ScrollTo moves the scroll position and emits a scroll event when it changed.
func (s *Surface) ScrollTo(left, top int) {
	if left == s.scrollLeft && top == s.scrollTop {
		return
	}
	s.scrollLeft, s.scrollTop = left, top
	for _, fn := range s.listeners {
		fn()
	}
}

var _ focus.Surface = (*Surface)(nil)
