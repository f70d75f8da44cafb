package design

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBlend_Endpoints(t *testing.T) {
	from := lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"}
	to := lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}

	assert.Equal(t, from, Blend(from, to, 0))
	assert.Equal(t, to, Blend(from, to, 1))
}

func TestBlend_MovesTowardsTarget(t *testing.T) {
	from := lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#000000"}
	to := lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}

	got := Blend(from, to, 0.5)
	assert.NotEqual(t, from.Light, got.Light)
	assert.NotEqual(t, to.Light, got.Light)
	assert.Len(t, got.Light, 7)
	assert.Len(t, got.Dark, 7)
}

func TestBlend_InvalidHexFallsBack(t *testing.T) {
	from := lipgloss.AdaptiveColor{Light: "white", Dark: "#000000"}
	to := lipgloss.AdaptiveColor{Light: "#000000", Dark: "nope"}

	got := Blend(from, to, 0.5)
	assert.Equal(t, "white", got.Light)
	assert.Equal(t, "#000000", got.Dark)
}

func TestColorZebra_DiffersFromBackground(t *testing.T) {
	assert.NotEqual(t, ColorBackground.Light, ColorZebra.Light)
	assert.NotEqual(t, ColorBackground.Dark, ColorZebra.Dark)
}
