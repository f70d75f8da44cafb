package grid

import (
	"gridctl/internal/scene"
)

const (
	labelInset    = 4
	cellFill      = scene.Color(0xffffff)
	defaultTextFg = scene.Color(0xffffff)
	cellZIndex    = 1
)

// Handlers receive the pointer behaviour wired into every rendered cell.
type Handlers struct {
	// Hover is called with the original text when the pointer enters a cell.
	Hover func(text string)
	// Press is called when the primary button goes down on a cell.
	Press func(c Coord)
}

// Factory builds the rendered unit of a cell: a transparent hit surface and
// a fitted text label inside a container labelled with the cell key.
type Factory struct {
	geom      Geometry
	measurer  scene.Measurer
	fitter    *Fitter
	family    string
	textColor scene.Color
	handlers  Handlers
}

// NewFactory returns a Factory for the grid geometry.
func NewFactory(geom Geometry, m scene.Measurer, family string) *Factory {
	return &Factory{
		geom:      geom,
		measurer:  m,
		fitter:    NewFitter(m, family),
		family:    family,
		textColor: defaultTextFg,
	}
}

// Bind sets the handlers used by cells created afterwards.
func (f *Factory) Bind(h Handlers) {
	f.handlers = h
}

// SetTextColor changes the label colour of cells created afterwards.
func (f *Factory) SetTextColor(c scene.Color) {
	f.textColor = c
}

// Geometry returns the grid geometry the factory lays cells out in.
func (f *Factory) Geometry() Geometry {
	return f.geom
}

// CreateCell builds the rendered unit for the cell at c holding text.
func (f *Factory) CreateCell(c Coord, text string) *scene.Node {
	rect := f.geom.Rect(c)

	bg := scene.NewGraphics(rect, cellFill, 0)
	bg.Interactive = true

	display := f.fitter.Fit(text, f.geom.CellWidth, f.geom.CellHeight)
	label := scene.NewText(display, rect.X+labelInset, rect.Y, f.geom.FontSize(), f.family, f.textColor, f.measurer)
	label.Interactive = true

	for _, n := range []*scene.Node{bg, label} {
		n.On(scene.PointerOver, func(scene.PointerEvent) {
			if f.handlers.Hover != nil {
				f.handlers.Hover(text)
			}
		})
		n.On(scene.PointerDown, func(ev scene.PointerEvent) {
			if ev.Button != scene.ButtonPrimary {
				return
			}
			if f.handlers.Press != nil {
				f.handlers.Press(c)
			}
		})
	}

	unit := scene.NewContainer(c.Key())
	unit.ZIndex = cellZIndex
	unit.Data = Cell{Coord: c, Text: text}
	unit.AddChild(bg)
	unit.AddChild(label)
	return unit
}

// DisplayText returns the fitted label of a rendered unit.
func DisplayText(unit *scene.Node) string {
	if unit == nil {
		return ""
	}
	for _, child := range unit.Children() {
		if child.Kind == scene.KindText {
			return child.Text
		}
	}
	return ""
}
