// ABOUTME: InputArea component for multi-line text input in the TUI
// ABOUTME: Wraps bubbles/textarea with auto-resize, newline keys and a disabled state
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harper/infoflow/internal/tui/theme"
)

const Placeholder = "Message InfoFlow AI..."

// InputArea represents a multi-line text input area
type InputArea struct {
	width     int
	minHeight int
	maxHeight int
	theme     theme.Theme
	textarea  textarea.Model
	focused   bool
	disabled  bool
}

// NewInputArea creates an InputArea that grows between minHeight and maxHeight lines
func NewInputArea(width, minHeight, maxHeight int, th theme.Theme) *InputArea {
	if minHeight < 1 {
		minHeight = 1
	}
	if maxHeight < minHeight {
		maxHeight = minHeight
	}

	ta := textarea.New()
	ta.Placeholder = Placeholder
	ta.SetWidth(width - 4) // border and padding
	ta.SetHeight(minHeight)
	// textarea's MaxHeight also caps the line count; height is clamped in Fit instead
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Prompt = ""
	ta.KeyMap.InsertNewline = Keys.Newline

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()

	return &InputArea{
		width:     width,
		minHeight: minHeight,
		maxHeight: maxHeight,
		theme:     th,
		textarea:  ta,
	}
}

func (ia *InputArea) SetValue(value string) {
	ia.textarea.SetValue(value)
}

func (ia *InputArea) GetValue() string {
	return ia.textarea.Value()
}

// Clear resets the input area to empty and shrinks it back to its minimum height
func (ia *InputArea) Clear() {
	ia.textarea.Reset()
	ia.Fit(1)
}

func (ia *InputArea) Focus() tea.Cmd {
	ia.focused = true
	return ia.textarea.Focus()
}

func (ia *InputArea) Blur() {
	ia.focused = false
	ia.textarea.Blur()
}

// SetDisabled blocks typing while a question is being answered.
func (ia *InputArea) SetDisabled(disabled bool) tea.Cmd {
	ia.disabled = disabled
	if disabled {
		ia.textarea.Blur()
		return nil
	}
	if ia.focused {
		return ia.textarea.Focus()
	}
	return nil
}

func (ia *InputArea) IsDisabled() bool {
	return ia.disabled
}

// Fit resizes the textarea to show lines lines, clamped to the configured bounds.
func (ia *InputArea) Fit(lines int) {
	h := max(ia.minHeight, min(lines, ia.maxHeight))
	ia.textarea.SetHeight(h)
}

// VisualLines counts the rows the draft occupies once soft wrapping is applied.
func (ia *InputArea) VisualLines() int {
	width := ia.textarea.Width()
	if width < 1 {
		return ia.textarea.LineCount()
	}
	rows := 0
	for _, line := range strings.Split(ia.textarea.Value(), "\n") {
		// the cursor takes a cell past the last character
		rows += max(1, (lipgloss.Width(line)+width)/width)
	}
	return rows
}

// Height is the rendered height including the border.
func (ia *InputArea) Height() int {
	return ia.textarea.Height() + 2
}

func (ia *InputArea) SetWidth(width int) {
	ia.width = width
	ia.textarea.SetWidth(width - 4)
}

func (ia *InputArea) SetTheme(th theme.Theme) {
	ia.theme = th
}

func (ia *InputArea) Init() tea.Cmd {
	return textarea.Blink
}

// Update forwards messages to the textarea; key presses are dropped while disabled
func (ia *InputArea) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && ia.disabled {
		return ia, nil
	}

	var cmd tea.Cmd
	ia.textarea, cmd = ia.textarea.Update(msg)
	return ia, cmd
}

func (ia *InputArea) View() string {
	style := ia.theme.InputAreaStyle().Width(ia.width - 2)
	if ia.focused && !ia.disabled {
		style = style.BorderForeground(ia.theme.Primary)
	}
	return style.Render(ia.textarea.View())
}
