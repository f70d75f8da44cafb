package focus_test

import (
	"testing"

	"gridctl/internal/focus"
	"gridctl/internal/grid"

	"github.com/stretchr/testify/assert"
)

func TestNext_ForwardTab(t *testing.T) {
	g := grid.DefaultGeometry()

	tests := []struct {
		name string
		from grid.Coord
		want grid.Coord
	}{
		{"advance column", grid.Coord{Column: 5, Row: 7}, grid.Coord{Column: 6, Row: 7}},
		{"wrap to next row", grid.Coord{Column: 99, Row: 7}, grid.Coord{Column: 0, Row: 8}},
		{"full wrap", grid.Coord{Column: 99, Row: 99}, grid.Coord{Column: 0, Row: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, focus.Next(g, tt.from, focus.Forward))
		})
	}
}

func TestNext_BackwardTab(t *testing.T) {
	g := grid.DefaultGeometry()

	assert.Equal(t, grid.Coord{Column: 4, Row: 7}, focus.Next(g, grid.Coord{Column: 5, Row: 7}, focus.Backward))
	assert.Equal(t, grid.Coord{Column: 99, Row: 6}, focus.Next(g, grid.Coord{Column: 0, Row: 7}, focus.Backward))
	assert.Equal(t, grid.Coord{Column: 99, Row: 99}, focus.Next(g, grid.Coord{}, focus.Backward))
}

func TestNext_BackwardInvertsForward(t *testing.T) {
	for _, g := range []grid.Geometry{
		grid.DefaultGeometry(),
		{Columns: 1, Rows: 1, CellWidth: 60, CellHeight: 20},
		{Columns: 3, Rows: 1, CellWidth: 60, CellHeight: 20},
		{Columns: 1, Rows: 4, CellWidth: 60, CellHeight: 20},
	} {
		for col := 0; col < g.Columns; col++ {
			for row := 0; row < g.Rows; row++ {
				c := grid.Coord{Column: col, Row: row}
				assert.Equal(t, c, focus.Next(g, focus.Next(g, c, focus.Forward), focus.Backward))
				assert.Equal(t, c, focus.Next(g, focus.Next(g, c, focus.Backward), focus.Forward))
			}
		}
	}
}

func TestNext_ArrowsStayOnAxis(t *testing.T) {
	g := grid.Geometry{Columns: 7, Rows: 5, CellWidth: 60, CellHeight: 20}

	for col := 0; col < g.Columns; col++ {
		for row := 0; row < g.Rows; row++ {
			c := grid.Coord{Column: col, Row: row}
			assert.Equal(t, row, focus.Next(g, c, focus.Left).Row)
			assert.Equal(t, row, focus.Next(g, c, focus.Right).Row)
			assert.Equal(t, col, focus.Next(g, c, focus.Up).Column)
			assert.Equal(t, col, focus.Next(g, c, focus.Down).Column)

			assert.True(t, g.Contains(focus.Next(g, c, focus.Left)))
			assert.True(t, g.Contains(focus.Next(g, c, focus.Right)))
			assert.True(t, g.Contains(focus.Next(g, c, focus.Up)))
			assert.True(t, g.Contains(focus.Next(g, c, focus.Down)))
		}
	}
}

func TestNext_ArrowWrap(t *testing.T) {
	g := grid.DefaultGeometry()

	assert.Equal(t, grid.Coord{Column: 99, Row: 3}, focus.Next(g, grid.Coord{Column: 0, Row: 3}, focus.Left))
	assert.Equal(t, grid.Coord{Column: 0, Row: 3}, focus.Next(g, grid.Coord{Column: 99, Row: 3}, focus.Right))
	assert.Equal(t, grid.Coord{Column: 3, Row: 99}, focus.Next(g, grid.Coord{Column: 3, Row: 0}, focus.Up))
	assert.Equal(t, grid.Coord{Column: 3, Row: 0}, focus.Next(g, grid.Coord{Column: 3, Row: 99}, focus.Down))
}

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		ev   focus.KeyEvent
		want focus.Direction
		ok   bool
	}{
		{focus.KeyEvent{Key: focus.KeyTab}, focus.Forward, true},
		{focus.KeyEvent{Key: focus.KeyTab, Shift: true}, focus.Backward, true},
		{focus.KeyEvent{Key: focus.KeyLeft}, focus.Left, true},
		{focus.KeyEvent{Key: focus.KeyRight, Shift: true}, focus.Right, true},
		{focus.KeyEvent{Key: focus.KeyUp}, focus.Up, true},
		{focus.KeyEvent{Key: focus.KeyDown}, focus.Down, true},
		{focus.KeyEvent{Key: focus.KeyOther}, focus.Forward, false},
	}
	for _, tt := range tests {
		t.Run(tt.ev.Key.String(), func(t *testing.T) {
			got, ok := focus.DirectionOf(tt.ev)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
