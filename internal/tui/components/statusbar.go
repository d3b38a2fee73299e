// ABOUTME: StatusBar component for displaying request state and theme info
// ABOUTME: Shows ready/thinking state with colored indicators and keyboard shortcuts
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/harper/infoflow/internal/tui/theme"
)

const statusShortcuts = "Enter: Send | F1: Help | Ctrl+C: Quit"

type StatusBar struct {
	width    int
	theme    theme.Theme
	busy     bool
	messages int
	endpoint string
}

func NewStatusBar(width int, t theme.Theme) *StatusBar {
	return &StatusBar{
		width: width,
		theme: t,
	}
}

func (s *StatusBar) SetBusy(busy bool) {
	s.busy = busy
}

func (s *StatusBar) SetMessageCount(n int) {
	s.messages = n
}

func (s *StatusBar) SetEndpoint(endpoint string) {
	s.endpoint = endpoint
}

func (s *StatusBar) SetTheme(t theme.Theme) {
	s.theme = t
}

func (s *StatusBar) SetSize(width int) {
	s.width = width
}

func (s *StatusBar) View() string {
	statusIcon, statusText := "🟢", "Ready"
	if s.busy {
		statusIcon, statusText = "🟡", "Thinking"
	}

	left := fmt.Sprintf("[%s %s] %s theme | %d messages", statusIcon, statusText, s.theme.Name, s.messages)
	if s.endpoint != "" {
		left += " | " + s.endpoint
	}

	// Right-align shortcuts; 3 for the " | " separator, 4 for style padding
	padding := s.width - lipgloss.Width(left) - lipgloss.Width(statusShortcuts) - 3 - 4
	if padding < 1 {
		padding = 1
	}

	full := fmt.Sprintf("%s%s| %s", left, strings.Repeat(" ", padding), statusShortcuts)

	return s.theme.StatusBarStyle().
		Width(s.width - 2).
		MaxHeight(1).
		Render(full)
}
