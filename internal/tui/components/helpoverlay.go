// ABOUTME: HelpOverlay lists the chat key bindings in a centered box
// ABOUTME: Rows come from the keymap's help text, one group per block
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/harper/infoflow/internal/tui/theme"
)

const (
	helpTitle    = "Keyboard Shortcuts"
	helpBoxWidth = 50
)

type HelpOverlay struct {
	width   int
	height  int
	theme   theme.Theme
	visible bool
	groups  [][]key.Binding
}

func NewHelpOverlay(width, height int, t theme.Theme) *HelpOverlay {
	return &HelpOverlay{
		width:  width,
		height: height,
		theme:  t,
		groups: Keys.FullHelp(),
	}
}

func (h *HelpOverlay) Show()           { h.visible = true }
func (h *HelpOverlay) Hide()           { h.visible = false }
func (h *HelpOverlay) Toggle()         { h.visible = !h.visible }
func (h *HelpOverlay) IsVisible() bool { return h.visible }

func (h *HelpOverlay) SetTheme(t theme.Theme) {
	h.theme = t
}

func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// rows renders one block per binding group with the key column aligned.
func (h *HelpOverlay) rows() string {
	keyWidth := 0
	for _, group := range h.groups {
		for _, b := range group {
			keyWidth = max(keyWidth, lipgloss.Width(b.Help().Key))
		}
	}

	keyStyle := lipgloss.NewStyle().Foreground(h.theme.Primary).Bold(true).Width(keyWidth + 2)
	descStyle := lipgloss.NewStyle().Foreground(h.theme.Foreground)

	blocks := make([]string, 0, len(h.groups))
	for _, group := range h.groups {
		var lines []string
		for _, b := range group {
			if !b.Enabled() {
				continue
			}
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
				keyStyle.Render(b.Help().Key), descStyle.Render(b.Help().Desc)))
		}
		if len(lines) > 0 {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}
	return strings.Join(blocks, "\n\n")
}

func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(h.theme.Primary).Render(helpTitle)
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", h.rows())

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(h.theme.Border).
		Padding(1, 2).
		Width(min(helpBoxWidth, max(h.width-4, 1))).
		Render(body)

	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, box)
}
