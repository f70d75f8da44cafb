package canvas

import (
	"fmt"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

const defaultDPI = 72

type faceKey struct {
	mono bool
	size float64
}

// FontMeasurer measures text with the embedded Go fonts. "monospace" and
// "Go Mono" map to Go Mono, every other family to Go Regular.
type FontMeasurer struct {
	mono    *truetype.Font
	regular *truetype.Font
	faces   map[faceKey]font.Face
}

// NewFontMeasurer parses the embedded fonts.
func NewFontMeasurer() (*FontMeasurer, error) {
	mono, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go Mono: %w", err)
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go Regular: %w", err)
	}
	return &FontMeasurer{
		mono:    mono,
		regular: regular,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// Face returns a cached face for the family at the given pixel size.
func (m *FontMeasurer) Face(size float64, family string) font.Face {
	key := faceKey{mono: isMonospace(family), size: size}
	if face, ok := m.faces[key]; ok {
		return face
	}
	f := m.regular
	if key.mono {
		f = m.mono
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     defaultDPI,
		Hinting: font.HintingNone,
	})
	m.faces[key] = face
	return face
}

// MeasureText implements scene.Measurer.
func (m *FontMeasurer) MeasureText(text string, fontSize float64, family string) (float64, float64) {
	face := m.Face(fontSize, family)
	advance := font.MeasureString(face, text)
	return float64(advance) / 64, float64(face.Metrics().Height) / 64
}

func isMonospace(family string) bool {
	switch strings.ToLower(strings.TrimSpace(family)) {
	case "monospace", "mono", "go mono", "gomono":
		return true
	}
	return false
}
