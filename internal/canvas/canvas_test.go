package canvas

import (
	"bytes"
	"image/png"
	"testing"

	"gridctl/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontMeasurer_Monospace(t *testing.T) {
	m, err := NewFontMeasurer()
	require.NoError(t, err)

	one, h := m.MeasureText("a", 16, "monospace")
	three, _ := m.MeasureText("abc", 16, "monospace")
	wide, _ := m.MeasureText("WWW", 16, "monospace")

	assert.Greater(t, one, 0.0)
	assert.Greater(t, h, 0.0)
	assert.InDelta(t, one*3, three, 0.01, "monospace advances are uniform")
	assert.InDelta(t, three, wide, 0.01)
}

func TestFontMeasurer_CoordinateLabelsFitDefaultCell(t *testing.T) {
	m, err := NewFontMeasurer()
	require.NoError(t, err)

	// Labels of the default 100x100 grid rendered at cellHeight-4.
	for _, label := range []string{"0-0", "12-34", "99-99"} {
		w, _ := m.MeasureText(label, 16, "monospace")
		assert.LessOrEqual(t, w, 60.0, label)
	}

	w, _ := m.MeasureText("abcdefghij", 16, "monospace")
	assert.Greater(t, w, 60.0)
}

func TestFontMeasurer_CachesFaces(t *testing.T) {
	m, err := NewFontMeasurer()
	require.NoError(t, err)

	a := m.Face(16, "monospace")
	b := m.Face(16, "Go Mono")
	c := m.Face(16, "sans-serif")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Len(t, m.faces, 2)
}

func TestRasterize_DrawsTextAndOverlay(t *testing.T) {
	m, err := NewFontMeasurer()
	require.NoError(t, err)

	stage := scene.NewStage(120, 40)
	cell := scene.NewContainer("col0row0")
	cell.AddChild(scene.NewGraphics(scene.Rect{Width: 60, Height: 20}, 0xffffff, 0))
	cell.AddChild(scene.NewText("0-0", 4, 0, 16, "monospace", 0xffffff, m))
	stage.AddChild(cell)

	opts := DefaultOptions(60, 20)
	opts.Overlay = &OverlayBox{Rect: scene.Rect{X: 60, Y: 20, Width: 52, Height: 14}, Text: "x"}

	img := Rasterize(stage, m, opts)
	require.Equal(t, 120, img.Bounds().Dx())
	require.Equal(t, 40, img.Bounds().Dy())

	bg := opts.Background
	br, bgG, bb, _ := bg.RGBA()

	var textPixels int
	for y := 0; y < 20; y++ {
		for x := 4; x < 40; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r > br+0x4000 && g > bgG+0x4000 && b > bb+0x4000 {
				textPixels++
			}
		}
	}
	assert.Greater(t, textPixels, 0, "label pixels should be drawn")

	r, g, b, _ := img.At(90, 30).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestRasterize_Clip(t *testing.T) {
	m, err := NewFontMeasurer()
	require.NoError(t, err)

	stage := scene.NewStage(600, 200)
	opts := DefaultOptions(60, 20)
	opts.Clip = scene.Rect{X: 60, Y: 20, Width: 120, Height: 40}

	img := Rasterize(stage, m, opts)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())
}

func TestWritePNG(t *testing.T) {
	m, err := NewFontMeasurer()
	require.NoError(t, err)

	img := Rasterize(scene.NewStage(60, 20), m, DefaultOptions(60, 20))

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 60, decoded.Bounds().Dx())
}
