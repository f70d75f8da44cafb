package components

import (
	"gridctl/internal/tui/design"
	"gridctl/internal/tui/utils"
	"gridctl/pkg/logging"

	"github.com/charmbracelet/lipgloss"
)

// maxTitleWidth caps the tooltip segment so the log line stays visible.
const maxTitleWidth = 32

// StatusBar represents the bottom status bar: the focused address, the
// tooltip of the hovered cell and the latest log line.
type StatusBar struct {
	Width   int
	Address string
	Title   string
	Log     *logging.LogEntry
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithAddress sets the focused cell address
func (s *StatusBar) WithAddress(address string) *StatusBar {
	s.Address = address
	return s
}

// WithTitle sets the tooltip text
func (s *StatusBar) WithTitle(title string) *StatusBar {
	s.Title = title
	return s
}

// WithLog sets the log entry shown on the right
func (s *StatusBar) WithLog(entry *logging.LogEntry) *StatusBar {
	s.Log = entry
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	if s.Width <= 0 {
		return ""
	}

	var content string
	if s.Address != "" {
		content += design.StatusAddressStyle.Render(s.Address)
	}
	if s.Title != "" {
		content += design.StatusTitleStyle.Render(utils.TruncateString(s.Title, maxTitleWidth))
	}

	if s.Log != nil {
		room := s.Width - lipgloss.Width(content) - 1
		if room > 0 {
			content += " " + logStyle(s.Log.Level).Render(utils.TruncateString(s.Log.Message, room))
		}
	}

	return design.StatusBarStyle.
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

func logStyle(level logging.LogLevel) lipgloss.Style {
	switch level {
	case logging.LevelError:
		return design.LogErrorStyle
	case logging.LevelWarn:
		return design.LogWarnStyle
	case logging.LevelDebug:
		return design.LogDebugStyle
	default:
		return design.LogInfoStyle
	}
}
