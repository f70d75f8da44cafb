package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedMeasurer reports 10px per byte and the font size as height.
var fixedMeasurer = MeasureFunc(func(text string, fontSize float64, family string) (float64, float64) {
	return float64(len(text)) * 10, fontSize
})

func newCell(label string, x, y float64) *Node {
	c := NewContainer(label)
	bg := NewGraphics(Rect{X: x, Y: y, Width: 60, Height: 20}, 0xffffff, 0)
	bg.Interactive = true
	txt := NewText(label, x+4, y, 16, "monospace", 0xffffff, fixedMeasurer)
	txt.Interactive = true
	c.AddChild(bg)
	c.AddChild(txt)
	return c
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 60, Height: 20}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"top left corner", 10, 20, true},
		{"inside", 30, 25, true},
		{"right edge exclusive", 70, 25, false},
		{"bottom edge exclusive", 30, 40, false},
		{"left of rect", 9.9, 25, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.x, tt.y))
		})
	}
}

func TestNewText_MeasuresBounds(t *testing.T) {
	n := NewText("abc", 4, 0, 16, "monospace", 0xffffff, fixedMeasurer)
	assert.Equal(t, Rect{X: 4, Y: 0, Width: 30, Height: 16}, n.Bounds)
	assert.Equal(t, KindText, n.Kind)
}

func TestStage_ChildByLabel(t *testing.T) {
	s := NewStage(600, 200)
	a := newCell("col0row0", 0, 0)
	b := newCell("col1row0", 60, 0)
	s.AddChild(a)
	s.AddChild(b)

	assert.Equal(t, 2, s.Len())
	assert.Same(t, a, s.ChildByLabel("col0row0"))
	assert.Same(t, b, s.ChildByLabel("col1row0"))
	assert.Nil(t, s.ChildByLabel("col9row9"))
}

func TestStage_DestroyRemovesFromIndex(t *testing.T) {
	s := NewStage(600, 200)
	a := newCell("col0row0", 0, 0)
	s.AddChild(a)

	a.Destroy()

	assert.True(t, a.Destroyed())
	assert.Nil(t, s.ChildByLabel("col0row0"))
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, a.Children())
}

func TestStage_HitTest(t *testing.T) {
	s := NewStage(120, 40)
	a := newCell("col0row0", 0, 0)
	b := newCell("col1row0", 60, 0)
	s.AddChild(a)
	s.AddChild(b)

	hit := s.HitTest(65, 5)
	require.NotNil(t, hit)
	assert.Same(t, b, hit.Parent())

	// The text child is inserted after the background and wins on overlap.
	hit = s.HitTest(5, 5)
	require.NotNil(t, hit)
	assert.Equal(t, KindText, hit.Kind)

	// Background only area of the first cell.
	hit = s.HitTest(55, 18)
	require.NotNil(t, hit)
	assert.Equal(t, KindGraphics, hit.Kind)

	assert.Nil(t, s.HitTest(200, 5), "outside the stage")
	assert.Nil(t, s.HitTest(5, 30), "no node on the second row")
}

func TestStage_HitTestRespectsZIndex(t *testing.T) {
	s := NewStage(100, 100)
	low := NewContainer("low")
	low.ZIndex = 2
	lg := NewGraphics(Rect{Width: 50, Height: 50}, 0, 1)
	lg.Interactive = true
	low.AddChild(lg)

	high := NewContainer("high")
	hg := NewGraphics(Rect{Width: 50, Height: 50}, 0, 1)
	hg.Interactive = true
	high.AddChild(hg)

	s.AddChild(low)
	s.AddChild(high)

	assert.Same(t, lg, s.HitTest(10, 10))
}

func TestStage_NonInteractiveIgnored(t *testing.T) {
	s := NewStage(100, 100)
	c := NewContainer("c")
	c.AddChild(NewGraphics(Rect{Width: 50, Height: 50}, 0, 1))
	s.AddChild(c)

	assert.Nil(t, s.HitTest(10, 10))
	assert.False(t, s.PointerDown(10, 10, ButtonPrimary))
}

func TestStage_PointerMoveEmitsOnEnter(t *testing.T) {
	s := NewStage(120, 40)
	a := newCell("col0row0", 0, 0)
	s.AddChild(a)

	var overs int
	for _, child := range a.Children() {
		child.On(PointerOver, func(PointerEvent) { overs++ })
	}

	s.PointerMove(55, 18) // background
	s.PointerMove(56, 18) // same node, no event
	s.PointerMove(5, 5)   // text node
	s.PointerMove(100, 35)
	s.PointerMove(55, 18)

	assert.Equal(t, 3, overs)
}

func TestStage_PointerDownDeliversButton(t *testing.T) {
	s := NewStage(120, 40)
	a := newCell("col0row0", 0, 0)
	s.AddChild(a)

	var got []Button
	for _, child := range a.Children() {
		child.On(PointerDown, func(ev PointerEvent) { got = append(got, ev.Button) })
	}

	assert.True(t, s.PointerDown(5, 5, ButtonPrimary))
	assert.True(t, s.PointerDown(55, 18, ButtonSecondary))
	assert.Equal(t, []Button{ButtonPrimary, ButtonSecondary}, got)
}

func TestNode_DestroyedNodeDoesNotEmit(t *testing.T) {
	n := NewGraphics(Rect{Width: 10, Height: 10}, 0, 1)
	var calls int
	n.On(PointerDown, func(PointerEvent) { calls++ })
	assert.Equal(t, 1, n.Listeners(PointerDown))

	n.Destroy()
	n.Emit(PointerEvent{Type: PointerDown})

	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, n.Listeners(PointerDown))
}

func TestColor_RGB(t *testing.T) {
	r, g, b := Color(0x123456).RGB()
	assert.Equal(t, uint8(0x12), r)
	assert.Equal(t, uint8(0x34), g)
	assert.Equal(t, uint8(0x56), b)
}
