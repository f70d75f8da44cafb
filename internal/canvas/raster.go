package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"gridctl/internal/scene"

	"github.com/fogleman/gg"
)

// Options controls how a stage is rasterized.
type Options struct {
	Background color.Color
	GridLine   color.Color
	CellWidth  float64
	CellHeight float64

	// Clip limits the output to a region of the stage. The zero value
	// renders the whole stage.
	Clip scene.Rect

	// Overlay draws the editor box on top of the grid when set.
	Overlay *OverlayBox
}

// OverlayBox is the editor as it appears on the canvas, in stage pixels.
type OverlayBox struct {
	Rect scene.Rect
	Text string
}

// DefaultOptions returns dark-background options for the given cell size.
func DefaultOptions(cellWidth, cellHeight float64) Options {
	return Options{
		Background: color.RGBA{R: 0x1f, G: 0x23, B: 0x2a, A: 0xff},
		GridLine:   color.RGBA{R: 0x3a, G: 0x40, B: 0x4a, A: 0xff},
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}
}

// LightTextColor is the label colour that reads on LightOptions.
const LightTextColor = scene.Color(0x1f232a)

// LightOptions returns light-background options for the given cell size.
// Labels must be drawn in LightTextColor.
func LightOptions(cellWidth, cellHeight float64) Options {
	return Options{
		Background: color.RGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff},
		GridLine:   color.RGBA{R: 0xd0, G: 0xd4, B: 0xda, A: 0xff},
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}
}

// Rasterize draws the stage into an image.
func Rasterize(stage *scene.Stage, m *FontMeasurer, opts Options) image.Image {
	clip := opts.Clip
	if clip.Width <= 0 || clip.Height <= 0 {
		clip = stage.Bounds()
	}

	dc := gg.NewContext(int(clip.Width), int(clip.Height))
	if opts.Background != nil {
		dc.SetColor(opts.Background)
		dc.Clear()
	}
	dc.Translate(-clip.X, -clip.Y)

	drawGridLines(dc, clip, opts)
	for _, n := range stage.Children() {
		drawNode(dc, m, n, clip)
	}
	if opts.Overlay != nil {
		drawOverlay(dc, m, opts)
	}
	return dc.Image()
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := gg.NewContextForImage(img).EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func drawGridLines(dc *gg.Context, clip scene.Rect, opts Options) {
	if opts.GridLine == nil || opts.CellWidth <= 0 || opts.CellHeight <= 0 {
		return
	}
	dc.SetColor(opts.GridLine)
	dc.SetLineWidth(1)
	startX := float64(int(clip.X/opts.CellWidth)) * opts.CellWidth
	for x := startX; x <= clip.Right(); x += opts.CellWidth {
		dc.DrawLine(x+0.5, clip.Y, x+0.5, clip.Bottom())
	}
	startY := float64(int(clip.Y/opts.CellHeight)) * opts.CellHeight
	for y := startY; y <= clip.Bottom(); y += opts.CellHeight {
		dc.DrawLine(clip.X, y+0.5, clip.Right(), y+0.5)
	}
	dc.Stroke()
}

func drawNode(dc *gg.Context, m *FontMeasurer, n *scene.Node, clip scene.Rect) {
	switch n.Kind {
	case scene.KindContainer:
		for _, c := range n.Children() {
			drawNode(dc, m, c, clip)
		}
	case scene.KindGraphics:
		if n.Alpha <= 0 || !intersects(n.Bounds, clip) {
			return
		}
		setFill(dc, n.Fill, n.Alpha)
		dc.DrawRectangle(n.Bounds.X, n.Bounds.Y, n.Bounds.Width, n.Bounds.Height)
		dc.Fill()
	case scene.KindText:
		if n.Alpha <= 0 || n.Text == "" || !intersects(n.Bounds, clip) {
			return
		}
		dc.SetFontFace(m.Face(n.FontSize, n.FontFamily))
		setFill(dc, n.Fill, n.Alpha)
		dc.DrawStringAnchored(n.Text, n.Bounds.X, n.Bounds.Y, 0, 1)
	}
}

func drawOverlay(dc *gg.Context, m *FontMeasurer, opts Options) {
	box := opts.Overlay.Rect
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(box.X, box.Y, box.Width, box.Height)
	dc.Fill()
	dc.SetRGB255(0x25, 0x63, 0xeb)
	dc.SetLineWidth(2)
	dc.DrawRectangle(box.X, box.Y, box.Width, box.Height)
	dc.Stroke()

	size := box.Height - 2
	if size <= 0 {
		return
	}
	dc.SetFontFace(m.Face(size, "monospace"))
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(opts.Overlay.Text, box.X+2, box.Y+1, 0, 1)
}

func setFill(dc *gg.Context, c scene.Color, alpha float64) {
	r, g, b := c.RGB()
	dc.SetRGBA255(int(r), int(g), int(b), int(alpha*255))
}

func intersects(a, b scene.Rect) bool {
	return a.X < b.Right() && b.X < a.Right() && a.Y < b.Bottom() && b.Y < a.Bottom()
}
