package design

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}

	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F0F",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorderFocus = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}

	ColorHighlight = lipgloss.AdaptiveColor{
		Light: "#EEF2FF",
		Dark:  "#312E81",
	}
)

// ZebraAmount is how far odd rows are blended from the background towards
// the text colour.
const ZebraAmount = 0.06

// ColorZebra shades every other row of the grid.
var ColorZebra = Blend(ColorBackground, ColorText, ZebraAmount)

// Grid styles
var (
	CellStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ZebraCellStyle = CellStyle.
			Background(ColorZebra)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorTextSecondary)

	ActiveHeaderStyle = HeaderStyle.
				Foreground(ColorPrimary)

	GutterStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Align(lipgloss.Right)

	// The overlay editor sits on top of the focused cell.
	OverlayStyle = lipgloss.NewStyle().
			Background(ColorHighlight).
			Foreground(ColorText)

	SelectionStyle = lipgloss.NewStyle().
			Background(ColorBorderFocus).
			Foreground(ColorBackground)
)

// Status Bar Styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Height(1)

	StatusAddressStyle = lipgloss.NewStyle().
				Background(ColorPrimary).
				Foreground(ColorBackground).
				Bold(true).
				Padding(0, 1)

	StatusTitleStyle = lipgloss.NewStyle().
				Background(ColorSurfaceAlt).
				Foreground(ColorTextSecondary).
				Padding(0, 1)
)

// Log level styles
var (
	LogPaneTitleStyle = lipgloss.NewStyle().
				Background(ColorSurfaceAlt).
				Foreground(ColorTextSecondary).
				Bold(true)

	LogInfoStyle  = lipgloss.NewStyle().Background(ColorSurfaceAlt).Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Background(ColorSurfaceAlt).Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Background(ColorSurfaceAlt).Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Background(ColorSurfaceAlt).Foreground(ColorTextMuted).Italic(true)
)

// Blend mixes two adaptive colours in Lab space, separately for the light
// and dark variants. amount 0 returns from, 1 returns to. Unparseable hex
// values fall back to from.
func Blend(from, to lipgloss.AdaptiveColor, amount float64) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Light: blendHex(from.Light, to.Light, amount),
		Dark:  blendHex(from.Dark, to.Dark, amount),
	}
}

func blendHex(from, to string, amount float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return from
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return from
	}
	return a.BlendLab(b, amount).Clamped().Hex()
}

// Initialize sets up the design system
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
