// ABOUTME: View rendering for the TUI (converts model state to terminal output)
// ABOUTME: Implements the Elm architecture View function
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	productName = "InfoFlow AI"
	disclaimer  = "InfoFlow AI can make mistakes. Consider checking important information."
)

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.helpOverlay.IsVisible() {
		return m.helpOverlay.View()
	}

	chat := m.chatView.View()
	if toasts := m.notifications.View(); toasts != "" {
		chat = overlayTopRight(chat, toasts, m.width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		chat,
		m.inputArea.View(),
		m.footerView(),
		m.statusBar.View(),
	)
}

func (m Model) headerView() string {
	indicator := "☀ light"
	if m.state.Dark() {
		indicator = "☾ dark"
	}

	logo := m.theme.LogoStyle().Render(productName)
	right := m.theme.DimStyle().Render(indicator + " (ctrl+t)")

	gap := m.width - lipgloss.Width(logo) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := logo + strings.Repeat(" ", gap) + right

	return m.theme.HeaderStyle().Width(m.width).Render(line)
}

func (m Model) footerView() string {
	return m.theme.DimStyle().
		Width(m.width).
		MaxHeight(footerHeight).
		Align(lipgloss.Center).
		Render(disclaimer)
}

// overlayTopRight replaces the top-right corner of base with box.
func overlayTopRight(base, box string, width int) string {
	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")
	boxWidth := lipgloss.Width(box)

	for i, line := range boxLines {
		if i >= len(baseLines) {
			break
		}
		left := lipgloss.NewStyle().MaxWidth(max(0, width-boxWidth)).Render(baseLines[i])
		pad := max(0, width-boxWidth-lipgloss.Width(left))
		baseLines[i] = left + strings.Repeat(" ", pad) + line
	}

	return lipgloss.JoinVertical(lipgloss.Left, baseLines...)
}
