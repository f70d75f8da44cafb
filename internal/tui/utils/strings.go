package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString truncates a string to the specified width in terminal columns.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// FitString truncates or right-pads s to exactly width terminal columns.
func FitString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

// CenterString centers s in width terminal columns, truncating when it does
// not fit.
func CenterString(s string, width int) string {
	s = TruncateString(s, width)
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// RightAlign pads s on the left to width terminal columns.
func RightAlign(s string, width int) string {
	s = TruncateString(s, width)
	return runewidth.FillLeft(s, width)
}
