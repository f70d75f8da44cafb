package focus

import "gridctl/internal/grid"

// Direction is a navigation step between cells.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// DirectionOf maps a key event to a navigation step.
func DirectionOf(ev KeyEvent) (Direction, bool) {
	switch ev.Key {
	case KeyTab:
		if ev.Shift {
			return Backward, true
		}
		return Forward, true
	case KeyLeft:
		return Left, true
	case KeyRight:
		return Right, true
	case KeyUp:
		return Up, true
	case KeyDown:
		return Down, true
	}
	return Forward, false
}

// Next returns the cell reached from c by one step in d. Every step wraps:
// Forward and Backward walk the grid in reading order and wrap between the
// first and last cell, arrows wrap within the current row or column.
func Next(g grid.Geometry, c grid.Coord, d Direction) grid.Coord {
	switch d {
	case Forward:
		if c.Column+1 < g.Columns {
			return grid.Coord{Column: c.Column + 1, Row: c.Row}
		}
		if c.Row+1 < g.Rows {
			return grid.Coord{Column: 0, Row: c.Row + 1}
		}
		return grid.Coord{}
	case Backward:
		if c.Column-1 >= 0 {
			return grid.Coord{Column: c.Column - 1, Row: c.Row}
		}
		if c.Row-1 >= 0 {
			return grid.Coord{Column: g.Columns - 1, Row: c.Row - 1}
		}
		return grid.Coord{Column: g.Columns - 1, Row: g.Rows - 1}
	case Left:
		if c.Column-1 >= 0 {
			return grid.Coord{Column: c.Column - 1, Row: c.Row}
		}
		return grid.Coord{Column: g.Columns - 1, Row: c.Row}
	case Right:
		if c.Column+1 < g.Columns {
			return grid.Coord{Column: c.Column + 1, Row: c.Row}
		}
		return grid.Coord{Column: 0, Row: c.Row}
	case Up:
		if c.Row-1 >= 0 {
			return grid.Coord{Column: c.Column, Row: c.Row - 1}
		}
		return grid.Coord{Column: c.Column, Row: g.Rows - 1}
	case Down:
		if c.Row+1 < g.Rows {
			return grid.Coord{Column: c.Column, Row: c.Row + 1}
		}
		return grid.Coord{Column: c.Column, Row: 0}
	}
	return c
}
