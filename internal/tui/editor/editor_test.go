package editor

import (
	"testing"

	"gridctl/internal/focus"
	"gridctl/internal/grid"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// focused returns an attached, focused editor holding value with the whole
// value selected, as the controller leaves it one frame after Focus.
func focused(t *testing.T, value string) *Editor {
	t.Helper()
	e := New(10)
	e.SetValue(value)
	e.SetSize(52, 14)
	e.Attach()
	e.Focus()
	e.Select()
	require.True(t, e.Focused())
	require.True(t, e.Selected())
	return e
}

func TestEditor_FocusRequiresAttach(t *testing.T) {
	e := New(10)

	e.Focus()
	assert.False(t, e.Focused())
	assert.Nil(t, e.Cmd())

	e.Attach()
	e.Focus()
	assert.True(t, e.Focused())
	assert.NotNil(t, e.Cmd(), "focus starts the cursor blink")
	assert.Nil(t, e.Cmd(), "commands are drained once")
}

func TestEditor_SelectOnlyWhenFocused(t *testing.T) {
	e := New(10)
	e.Attach()
	e.Select()
	assert.False(t, e.Selected())
}

func TestEditor_TypingReplacesSelection(t *testing.T) {
	e := focused(t, "0-0")

	e.Update(runes("h"))
	e.Update(runes("i"))

	assert.Equal(t, "hi", e.Value())
	assert.False(t, e.Selected())
}

func TestEditor_SpaceReplacesSelection(t *testing.T) {
	e := focused(t, "0-0")

	e.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.Equal(t, " ", e.Value())
}

func TestEditor_BackspaceClearsSelection(t *testing.T) {
	e := focused(t, "12-34")

	e.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "", e.Value())
	assert.False(t, e.Selected())
}

func TestEditor_BackspaceWithoutSelection(t *testing.T) {
	e := focused(t, "abc")
	e.Update(tea.KeyMsg{Type: tea.KeyEnd})
	require.False(t, e.Selected(), "cursor keys drop the selection")

	e.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "ab", e.Value())
}

func TestEditor_EscBlurs(t *testing.T) {
	e := focused(t, "x")
	blurs := 0
	e.OnBlur(func() { blurs++ })

	e.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, e.Focused())
	assert.Equal(t, 1, blurs)
	assert.True(t, e.Attached(), "blur leaves detaching to the listener")
}

func TestEditor_BlurNotifiesOnce(t *testing.T) {
	e := focused(t, "x")
	blurs := 0
	e.OnBlur(func() { blurs++ })

	e.Blur()
	e.Blur()
	e.Detach()

	assert.Equal(t, 1, blurs)
	assert.False(t, e.Attached())
}

func TestEditor_DetachBlurs(t *testing.T) {
	e := focused(t, "x")
	blurs := 0
	e.OnBlur(func() { blurs++ })

	e.Detach()

	assert.False(t, e.Focused())
	assert.Equal(t, 1, blurs)
}

func TestEditor_KeyListenersPreventDefault(t *testing.T) {
	e := focused(t, "abc")
	var seen []focus.KeyEvent
	e.OnKeyDown(func(ev focus.KeyEvent) bool {
		seen = append(seen, ev)
		return ev.Key != focus.KeyOther
	})

	e.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "abc", e.Value())
	assert.True(t, e.Selected(), "prevented keys leave the editor untouched")

	e.Update(runes("z"))
	assert.Equal(t, "z", e.Value())

	require.Len(t, seen, 2)
	assert.Equal(t, focus.KeyEvent{Key: focus.KeyTab, Shift: true}, seen[0])
	assert.Equal(t, focus.KeyEvent{Key: focus.KeyOther}, seen[1])
}

func TestEditor_IgnoresInputWhenUnfocused(t *testing.T) {
	e := New(10)
	e.SetValue("keep")
	e.Attach()
	called := false
	e.OnKeyDown(func(focus.KeyEvent) bool { called = true; return false })

	assert.Nil(t, e.Update(runes("x")))
	assert.Equal(t, "keep", e.Value())
	assert.False(t, called)
}

func TestEditor_SetValueDropsSelection(t *testing.T) {
	e := focused(t, "old")
	e.SetValue("new")
	assert.False(t, e.Selected())
	assert.Equal(t, "new", e.Value())
}

func TestEditor_OnFocus(t *testing.T) {
	e := New(10)
	focuses := 0
	e.OnFocus(func() { focuses++ })

	e.Focus()
	assert.Equal(t, 0, focuses)

	e.Attach()
	e.Focus()
	assert.Equal(t, 1, focuses)
}

func TestEditor_Geometry(t *testing.T) {
	e := New(10)
	e.SetSize(52, 14)
	e.SetPosition(70, 40)
	e.SetCell(grid.Coord{Column: 4, Row: 1})
	e.SetTitle("4-1")

	w, h := e.Size()
	assert.Equal(t, 52, w)
	assert.Equal(t, 14, h)
	l, top := e.Position()
	assert.Equal(t, 70, l)
	assert.Equal(t, 40, top)
	assert.Equal(t, 5, e.Columns())
	c, ok := e.Cell()
	assert.True(t, ok)
	assert.Equal(t, grid.Coord{Column: 4, Row: 1}, c)
	assert.Equal(t, "4-1", e.Title())

	e.SetSize(3, 14)
	assert.Equal(t, 1, e.Columns())
}

func TestEditor_ViewWidth(t *testing.T) {
	e := focused(t, "a very long value")
	assert.Contains(t, e.View(), "a ver")

	e.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.GreaterOrEqual(t, runewidth.StringWidth(stripANSI(e.View())), e.Columns())
}

func TestKeyEventOf(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want focus.KeyEvent
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, focus.KeyEvent{Key: focus.KeyTab}},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, focus.KeyEvent{Key: focus.KeyTab, Shift: true}},
		{tea.KeyMsg{Type: tea.KeyLeft}, focus.KeyEvent{Key: focus.KeyLeft}},
		{tea.KeyMsg{Type: tea.KeyRight}, focus.KeyEvent{Key: focus.KeyRight}},
		{tea.KeyMsg{Type: tea.KeyUp}, focus.KeyEvent{Key: focus.KeyUp}},
		{tea.KeyMsg{Type: tea.KeyDown}, focus.KeyEvent{Key: focus.KeyDown}},
		{tea.KeyMsg{Type: tea.KeyShiftUp}, focus.KeyEvent{Key: focus.KeyUp, Shift: true}},
		{tea.KeyMsg{Type: tea.KeyEnter}, focus.KeyEvent{Key: focus.KeyOther}},
		{runes("q"), focus.KeyEvent{Key: focus.KeyOther}},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, KeyEventOf(tt.msg))
		})
	}
}

// stripANSI drops escape sequences so widths can be compared.
func stripANSI(s string) string {
	out := make([]rune, 0, len(s))
	inEsc := false
	for _, r := range s {
		switch {
		case r == 0x1b:
			inEsc = true
		case inEsc:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
