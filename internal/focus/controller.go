package focus

import (
	"gridctl/internal/grid"
	"gridctl/pkg/logging"
)

const focusSubsystem = "Focus"

// Overlay insets relative to the cell size.
const (
	overlayWidthInset  = 8
	overlayHeightInset = 6
)

// State is the edit state of the grid.
type State int

const (
	Unfocused State = iota
	Focused
)

// String makes State satisfy the fmt.Stringer interface.
func (s State) String() string {
	if s == Focused {
		return "Focused"
	}
	return "Unfocused"
}

// Controller owns which cell is being edited. It drives the overlay editor,
// commits edits back into the grid scene and moves focus between cells.
//
// Text is only ever written at commit time: the unit of the committed cell is
// destroyed and rebuilt from the overlay value so its label is fitted again.
// While a cell is focused its unit is detached from the scene and the
// overlay takes its place.
type Controller struct {
	geom    grid.Geometry
	cells   *grid.Scene
	factory *grid.Factory
	overlay Overlay
	surface Surface
	frames  Scheduler

	state   State
	current grid.Coord

	last    grid.Coord
	hasLast bool

	committing    bool
	scrollPending bool
	commits       int
}

// New wires a controller to its collaborators. It binds the factory's pointer
// handlers and subscribes to overlay and surface events, so it must be created
// before the overlay or surface emit anything.
func New(cells *grid.Scene, factory *grid.Factory, overlay Overlay, surface Surface, frames Scheduler) *Controller {
	c := &Controller{
		geom:    cells.Geometry(),
		cells:   cells,
		factory: factory,
		overlay: overlay,
		surface: surface,
		frames:  frames,
	}

	factory.Bind(grid.Handlers{
		Hover: surface.SetTitle,
		Press: func(p grid.Coord) { c.Focus(p.Column, p.Row) },
	})
	overlay.OnBlur(c.BlurAndCommit)
	overlay.OnKeyDown(c.HandleKey)
	surface.OnScroll(c.HandleScroll)
	return c
}

// Start focuses the first cell. The scene must already be populated.
func (c *Controller) Start() {
	c.Focus(0, 0)
}

// State returns the current state and, when focused, the focused cell.
func (c *Controller) State() (State, grid.Coord) {
	return c.state, c.current
}

// LastFocused returns the cell most recently committed.
func (c *Controller) LastFocused() (grid.Coord, bool) {
	return c.last, c.hasLast
}

// Commits returns how many edits have been committed.
func (c *Controller) Commits() int {
	return c.commits
}

// Focus commits any edit in progress and places the overlay over the cell at
// (column, row). Coordinates outside the grid only commit.
func (c *Controller) Focus(column, row int) {
	if c.state == Focused {
		c.BlurAndCommit()
	}

	target := grid.Coord{Column: column, Row: row}
	unit, ok := c.cells.Find(target.Key())
	if !ok {
		logging.Debug(focusSubsystem, "No cell at %s, nothing to focus", target)
		return
	}
	cell, ok := grid.CellOf(unit)
	if !ok {
		logging.Warn(focusSubsystem, "Unit %s carries no cell metadata", unit.Label)
		return
	}

	c.overlay.SetValue(cell.Text)
	c.overlay.SetTitle(cell.Text)
	c.overlay.SetCell(cell.Coord)
	c.overlay.SetSize(c.geom.CellWidth-overlayWidthInset, c.geom.CellHeight-overlayHeightInset)
	c.overlay.SetPosition(c.screenPosition(cell.Coord))
	c.overlay.Attach()

	// Focus and selection only take once the overlay is laid out.
	c.frames.RequestFrame(func() {
		if !c.overlay.Attached() {
			return
		}
		c.overlay.Focus()
		c.overlay.Select()
	})

	c.cells.Detach(target.Key())
	c.state = Focused
	c.current = cell.Coord
	logging.Debug(focusSubsystem, "Focused %s", cell.Coord)
}

// BlurAndCommit writes the overlay value back into the grid and hides the
// overlay. It does nothing when no cell is focused.
func (c *Controller) BlurAndCommit() {
	if c.state != Focused || c.committing {
		return
	}
	c.committing = true
	defer func() { c.committing = false }()

	coord, ok := c.overlay.Cell()
	if !ok {
		logging.Warn(focusSubsystem, "Overlay carries no cell, dropping edit")
		c.overlay.Detach()
		c.state = Unfocused
		return
	}
	c.last, c.hasLast = coord, true

	c.cells.RemoveAndDestroy(coord.Key())
	c.cells.Insert(c.factory.CreateCell(coord, c.overlay.Value()))

	c.overlay.Blur()
	c.overlay.Detach()
	c.state = Unfocused
	c.commits++
	logging.Debug(focusSubsystem, "Committed %s", coord)
}

// Refocus focuses the last committed cell again when nothing is focused.
func (c *Controller) Refocus() bool {
	if c.state == Focused || !c.hasLast {
		return false
	}
	c.Focus(c.last.Column, c.last.Row)
	return c.state == Focused
}

// HandleKey moves focus for navigation keys. It reports whether the key was
// consumed, in which case the overlay must not apply its default behaviour.
func (c *Controller) HandleKey(ev KeyEvent) bool {
	dir, ok := DirectionOf(ev)
	if !ok {
		return false
	}
	from, ok := c.overlay.Cell()
	if !ok {
		return false
	}
	next := Next(c.geom, from, dir)
	c.Focus(next.Column, next.Row)
	return true
}

// HandleScroll repositions the overlay on the next frame after the surface
// scrolled. Several scrolls within one frame reposition once.
func (c *Controller) HandleScroll() {
	if !c.overlay.Attached() || c.scrollPending {
		return
	}
	c.scrollPending = true
	c.frames.RequestFrame(func() {
		c.scrollPending = false
		if !c.overlay.Attached() {
			return
		}
		coord, ok := c.overlay.Cell()
		if !ok {
			return
		}
		c.Focus(coord.Column, coord.Row)
	})
}

// screenPosition returns the top-left corner of the cell on screen, in pixels.
func (c *Controller) screenPosition(p grid.Coord) (left, top int) {
	bounds := c.surface.Bounds()
	scrollLeft, scrollTop := c.surface.ScrollOffset()
	left = p.Column*c.geom.CellWidth + int(bounds.X) - scrollLeft
	top = p.Row*c.geom.CellHeight + int(bounds.Y) - scrollTop
	return left, top
}
