package grid

import (
	"strings"

	"gridctl/internal/scene"
)

// Fitter shortens cell text to the width of a cell.
//
// Text that measures wider than the cell is cut with a half-unit budget of
// floor(width / floor(cellHeight/2)): narrow runes cost one unit, all others
// two. The budget approximates glyph widths without measuring every prefix.
type Fitter struct {
	measurer scene.Measurer
	family   string
}

// NewFitter returns a Fitter measuring text in the given font family.
func NewFitter(m scene.Measurer, family string) *Fitter {
	return &Fitter{measurer: m, family: family}
}

// Fit returns text, or the longest prefix the half-unit budget allows when the
// text rendered at cellHeight-4 is wider than availableWidth.
func (f *Fitter) Fit(text string, availableWidth, cellHeight int) string {
	w, _ := f.measurer.MeasureText(text, float64(cellHeight-4), f.family)
	if w <= float64(availableWidth) {
		return text
	}

	unit := cellHeight / 2
	if unit <= 0 {
		return ""
	}
	budget := availableWidth / unit

	var b strings.Builder
	for _, r := range text {
		budget -= HalfUnits(r)
		if budget < 0 {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsNarrow reports whether r counts as a half-width character: printable
// ASCII other than space, or half-width katakana U+FF67..U+FF9F.
func IsNarrow(r rune) bool {
	return (r >= '!' && r <= '~') || (r >= 'ｧ' && r <= 'ﾟ')
}

// HalfUnits is the budget cost of r.
func HalfUnits(r rune) int {
	if IsNarrow(r) {
		return 1
	}
	return 2
}
