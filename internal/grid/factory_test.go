package grid

import (
	"testing"

	"gridctl/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoord_Key(t *testing.T) {
	assert.Equal(t, "col0row0", Coord{}.Key())
	assert.Equal(t, "col12row7", Coord{Column: 12, Row: 7}.Key())
	assert.Equal(t, "(3,4)", Coord{Column: 3, Row: 4}.String())
}

func TestGeometry_Rect(t *testing.T) {
	g := DefaultGeometry()

	assert.Equal(t, scene.Rect{X: 180, Y: 80, Width: 60, Height: 20}, g.Rect(Coord{Column: 3, Row: 4}))
	assert.Equal(t, 6000, g.Width())
	assert.Equal(t, 2000, g.Height())
	assert.Equal(t, 16.0, g.FontSize())
}

func TestGeometry_Contains(t *testing.T) {
	g := DefaultGeometry()

	assert.True(t, g.Contains(Coord{}))
	assert.True(t, g.Contains(Coord{Column: 99, Row: 99}))
	assert.False(t, g.Contains(Coord{Column: 100, Row: 0}))
	assert.False(t, g.Contains(Coord{Column: 0, Row: -1}))
}

func TestFactory_CreateCell(t *testing.T) {
	f := NewFactory(DefaultGeometry(), columnMeasurer, "monospace")

	unit := f.CreateCell(Coord{Column: 2, Row: 3}, "hello world")

	assert.Equal(t, "col2row3", unit.Label)
	assert.Equal(t, scene.KindContainer, unit.Kind)
	assert.Equal(t, 1, unit.ZIndex)

	cell, ok := CellOf(unit)
	require.True(t, ok)
	assert.Equal(t, Coord{Column: 2, Row: 3}, cell.Coord)
	assert.Equal(t, "hello world", cell.Text, "metadata keeps the untruncated text")

	children := unit.Children()
	require.Len(t, children, 2)

	bg, label := children[0], children[1]
	assert.Equal(t, scene.KindGraphics, bg.Kind)
	assert.Equal(t, scene.Rect{X: 120, Y: 60, Width: 60, Height: 20}, bg.Bounds)
	assert.Equal(t, 0.0, bg.Alpha)
	assert.True(t, bg.Interactive)

	assert.Equal(t, scene.KindText, label.Kind)
	assert.Equal(t, 124.0, label.Bounds.X)
	assert.Equal(t, 60.0, label.Bounds.Y)
	assert.Equal(t, 16.0, label.FontSize)
	assert.Equal(t, "hello", label.Text)
	assert.True(t, label.Interactive)
	assert.Equal(t, "hello", DisplayText(unit))
}

func TestFactory_SetTextColor(t *testing.T) {
	f := NewFactory(DefaultGeometry(), columnMeasurer, "monospace")
	before := f.CreateCell(Coord{}, "a")

	f.SetTextColor(0x1f232a)
	after := f.CreateCell(Coord{Column: 1}, "b")

	assert.Equal(t, scene.Color(0xffffff), before.Children()[1].Fill)
	assert.Equal(t, scene.Color(0x1f232a), after.Children()[1].Fill)
	assert.Equal(t, scene.Color(0xffffff), after.Children()[0].Fill, "the hit surface keeps its fill")
}

func TestFactory_PointerHandlers(t *testing.T) {
	f := NewFactory(DefaultGeometry(), columnMeasurer, "monospace")

	var hovered []string
	var pressed []Coord
	f.Bind(Handlers{
		Hover: func(text string) { hovered = append(hovered, text) },
		Press: func(c Coord) { pressed = append(pressed, c) },
	})

	unit := f.CreateCell(Coord{Column: 1, Row: 1}, "a long label here")
	for _, child := range unit.Children() {
		child.Emit(scene.PointerEvent{Type: scene.PointerOver})
		child.Emit(scene.PointerEvent{Type: scene.PointerDown, Button: scene.ButtonPrimary})
		child.Emit(scene.PointerEvent{Type: scene.PointerDown, Button: scene.ButtonSecondary})
	}

	assert.Equal(t, []string{"a long label here", "a long label here"}, hovered)
	assert.Equal(t, []Coord{{Column: 1, Row: 1}, {Column: 1, Row: 1}}, pressed)
}

func TestFactory_UnboundHandlersAreSafe(t *testing.T) {
	f := NewFactory(DefaultGeometry(), columnMeasurer, "monospace")
	unit := f.CreateCell(Coord{}, "x")

	assert.NotPanics(t, func() {
		for _, child := range unit.Children() {
			child.Emit(scene.PointerEvent{Type: scene.PointerOver})
			child.Emit(scene.PointerEvent{Type: scene.PointerDown})
		}
	})
}

func TestCellOf_Foreign(t *testing.T) {
	_, ok := CellOf(scene.NewContainer("other"))
	assert.False(t, ok)
	_, ok = CellOf(nil)
	assert.False(t, ok)
	assert.Equal(t, "", DisplayText(nil))
}

func TestInitialText(t *testing.T) {
	assert.Equal(t, "4-7", CoordinateText(Coord{Column: 4, Row: 7}))
	assert.Equal(t, "", BlankText(Coord{Column: 4, Row: 7}))
}
