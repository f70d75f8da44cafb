package model

import (
	"fmt"
	"strings"

	"gridctl/internal/tui/utils"
	"gridctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once
// the channel is closed or when there is no channel.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// FormatLogLine renders an entry the way the activity log shows it.
func FormatLogLine(entry logging.LogEntry) string {
	line := fmt.Sprintf("%s [%s] [%s] %s",
		entry.Timestamp.Format("15:04:05.000"),
		entry.Level.String(),
		entry.Subsystem,
		entry.Message)
	if entry.Err != nil {
		line = fmt.Sprintf("%s -- Error: %v", line, entry.Err)
	}
	return line
}

// AddLogEntry records an entry in the activity log, keeping at most
// MaxActivityLogLines lines. Debug entries are only kept in debug mode.
func (m *Model) AddLogEntry(entry logging.LogEntry) {
	if entry.Level < logging.LevelInfo && !m.DebugMode {
		return
	}
	m.ActivityLog = append(m.ActivityLog, FormatLogLine(entry))
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	e := entry
	m.LastLog = &e
	m.refreshLogViewport()
}

// refreshLogViewport loads the activity log into the log pane, following the
// newest line unless the pane was scrolled up.
func (m *Model) refreshLogViewport() {
	follow := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(prepareLogContent(m.ActivityLog, m.LogViewport.Width))
	if follow {
		m.LogViewport.GotoBottom()
	}
}

// prepareLogContent cuts every line to width so the pane never wraps.
func prepareLogContent(lines []string, width int) string {
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	cut := make([]string, len(lines))
	for i, l := range lines {
		cut[i] = utils.TruncateString(l, width)
	}
	return strings.Join(cut, "\n")
}
