package components

import (
	"strings"
	"testing"

	"gridctl/pkg/logging"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusBar_Render(t *testing.T) {
	bar := NewStatusBar(60).
		WithAddress("(3,4)").
		WithTitle("3-4").
		WithLog(&logging.LogEntry{Level: logging.LevelWarn, Message: "something happened"})

	out := bar.Render()
	assert.Equal(t, 60, lipgloss.Width(out))
	assert.Contains(t, out, "(3,4)")
	assert.Contains(t, out, "3-4")
	assert.Contains(t, out, "something happened")
}

func TestStatusBar_TruncatesLog(t *testing.T) {
	bar := NewStatusBar(20).
		WithAddress("(0,0)").
		WithLog(&logging.LogEntry{Level: logging.LevelInfo, Message: strings.Repeat("x", 100)})

	out := bar.Render()
	assert.Equal(t, 20, lipgloss.Width(out))
}

func TestStatusBar_Empty(t *testing.T) {
	assert.Equal(t, "", NewStatusBar(0).Render())
	assert.Equal(t, 10, lipgloss.Width(NewStatusBar(10).Render()))
}

func TestColumnHeader_Render(t *testing.T) {
	h := ColumnHeader{Width: 20, Gutter: 3, CellColumns: 6, First: 8, Count: 2, Active: -1}

	out := h.Render()
	assert.Equal(t, 20, lipgloss.Width(out))
	assert.Contains(t, out, "8")
	assert.Contains(t, out, "9")
	assert.True(t, strings.HasPrefix(out, "   "))
}

func TestRowLabel(t *testing.T) {
	assert.Contains(t, RowLabel(7, 3, false), " 7 ")
	assert.Equal(t, 3, lipgloss.Width(RowLabel(42, 3, true)))
	assert.Equal(t, "", RowLabel(1, 0, false))
}
