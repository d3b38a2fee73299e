// ABOUTME: ChatView component for displaying the transcript with scrolling
// ABOUTME: Uses bubbles viewport, renders answers as markdown and shows a thinking spinner
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harper/infoflow/internal/conversation"
	"github.com/harper/infoflow/internal/render"
	"github.com/harper/infoflow/internal/tui/theme"
)

const (
	WelcomeTitle    = "InfoFlow AI"
	WelcomeText     = "How can I help you today?"
	WelcomeSubtext  = "Ask me anything and I'll provide you with detailed, helpful responses."
	ThinkingText    = "Thinking..."
	maxBubbleWidth  = 80
	bubbleWidthPerc = 80
)

// entryKey identifies the layout an entry was formatted for.
type entryKey struct {
	width    int
	theme    string
	markdown bool
}

type ChatView struct {
	width    int
	height   int
	theme    theme.Theme
	viewport viewport.Model
	spinner  spinner.Model
	messages []conversation.Message
	busy     bool
	markdown bool

	// formatted entries for messages[:len(entries)], valid while key matches
	entries []string
	body    string
	key     entryKey
	stale   bool

	renderMarkdown func(string, render.Options) string
}

func NewChatView(width, height int, t theme.Theme) *ChatView {
	vp := viewport.New(width, height)
	vp.Style = t.ChatViewStyle()

	cv := &ChatView{
		width:    width,
		height:   height,
		theme:    t,
		viewport: vp,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		markdown: true,

		renderMarkdown: render.MarkdownOrPlain,
	}
	cv.spinner.Style = lipgloss.NewStyle().Foreground(t.Primary)
	return cv
}

// SetMessages replaces the transcript. The view follows the bottom whenever
// the transcript grows.
func (cv *ChatView) SetMessages(messages []conversation.Message) {
	grew := len(messages) > len(cv.messages)
	keep := 0
	for keep < len(cv.entries) && keep < len(messages) && messages[keep] == cv.messages[keep] {
		keep++
	}
	if keep < len(cv.entries) {
		cv.entries = cv.entries[:keep]
		cv.stale = true
	}
	cv.messages = messages
	cv.updateViewport()
	if grew {
		cv.scrollToBottom()
	}
}

// SetBusy shows or hides the thinking indicator. The returned command starts
// the spinner when the view becomes busy.
func (cv *ChatView) SetBusy(busy bool) tea.Cmd {
	started := busy && !cv.busy
	changed := busy != cv.busy
	cv.busy = busy
	if changed {
		cv.updateViewport()
	}
	if started {
		cv.scrollToBottom()
		return cv.spinner.Tick
	}
	return nil
}

func (cv *ChatView) IsBusy() bool {
	return cv.busy
}

func (cv *ChatView) SetMarkdown(enabled bool) {
	if cv.markdown == enabled {
		return
	}
	cv.markdown = enabled
	cv.updateViewport()
}

func (cv *ChatView) SetTheme(t theme.Theme) {
	cv.theme = t
	cv.viewport.Style = t.ChatViewStyle()
	cv.spinner.Style = lipgloss.NewStyle().Foreground(t.Primary)
	cv.updateViewport()
}

func (cv *ChatView) AtBottom() bool {
	return cv.viewport.AtBottom()
}

func (cv *ChatView) bubbleWidth() int {
	w := cv.width * bubbleWidthPerc / 100
	if w > maxBubbleWidth {
		w = maxBubbleWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}

func (cv *ChatView) formatMessage(msg conversation.Message) string {
	inner := cv.width - 2
	if inner < 1 {
		inner = 1
	}

	switch msg.Role {
	case conversation.RoleUser:
		bubble := cv.theme.UserBubbleStyle().
			MaxWidth(cv.bubbleWidth()).
			Render(wrap(msg.Text, cv.bubbleWidth()-2))
		return lipgloss.PlaceHorizontal(inner, lipgloss.Right, bubble)

	case conversation.RoleAssistant:
		body := msg.Text
		if cv.markdown {
			style := render.StyleLight
			if cv.theme.Name == theme.DarkTheme.Name {
				style = render.StyleDark
			}
			body = cv.renderMarkdown(msg.Text, render.Options{Style: style, Width: cv.bubbleWidth() - 4})
		}
		icon := cv.theme.LogoStyle().Render(msg.Role.Icon())
		return lipgloss.JoinHorizontal(lipgloss.Top, icon, " ", body)

	case conversation.RoleError:
		badge := cv.theme.ErrorStyle().Render(msg.Role.Icon())
		bubble := cv.theme.ErrorBubbleStyle().
			Render(wrap(msg.Text, cv.bubbleWidth()-4))
		return lipgloss.JoinHorizontal(lipgloss.Center, badge, " ", bubble)
	}

	return cv.theme.DimStyle().Render(msg.Text)
}

func (cv *ChatView) thinking() string {
	icon := cv.theme.LogoStyle().Render(conversation.RoleAssistant.Icon())
	return icon + " " + cv.spinner.View() + " " + cv.theme.DimStyle().Render(ThinkingText)
}

// updateViewport formats the entries missing from the cache and refreshes
// the viewport content. A layout change drops the whole cache.
func (cv *ChatView) updateViewport() {
	key := entryKey{width: cv.width, theme: cv.theme.Name, markdown: cv.markdown}
	if key != cv.key {
		cv.key = key
		cv.entries = cv.entries[:0]
		cv.stale = true
	}
	for _, msg := range cv.messages[len(cv.entries):] {
		cv.entries = append(cv.entries, cv.formatMessage(msg))
		cv.stale = true
	}
	if cv.stale {
		cv.body = strings.Join(cv.entries, "\n\n")
		cv.stale = false
	}
	cv.refresh()
}

// refresh joins the cached body with the thinking line.
func (cv *ChatView) refresh() {
	content := cv.body
	if cv.busy {
		if content != "" {
			content += "\n\n"
		}
		content += cv.thinking()
	}
	cv.viewport.SetContent(content)
}

func (cv *ChatView) scrollToBottom() {
	cv.viewport.GotoBottom()
}

func (cv *ChatView) welcome() string {
	title := cv.theme.LogoStyle().Render(WelcomeTitle)
	text := lipgloss.NewStyle().Foreground(cv.theme.Foreground).Bold(true).Render(WelcomeText)
	sub := cv.theme.DimStyle().Render(WelcomeSubtext)
	block := lipgloss.JoinVertical(lipgloss.Center, title, "", text, sub)
	return lipgloss.Place(cv.width, cv.height, lipgloss.Center, lipgloss.Center, block)
}

func (cv *ChatView) View() string {
	if len(cv.messages) == 0 && !cv.busy {
		return cv.welcome()
	}
	return cv.viewport.View()
}

// SetSize only reformats the transcript when the width changes.
func (cv *ChatView) SetSize(width, height int) {
	if width == cv.width && height == cv.height {
		return
	}
	resized := width != cv.width
	cv.width = width
	cv.height = height
	cv.viewport.Width = width
	cv.viewport.Height = height
	if resized {
		cv.updateViewport()
		return
	}
	cv.refresh()
}

func (cv *ChatView) Init() tea.Cmd {
	return nil
}

func (cv *ChatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if _, ok := msg.(spinner.TickMsg); ok {
		// the spinner stops once the request settles
		if !cv.busy {
			return cv, nil
		}
		cv.spinner, cmd = cv.spinner.Update(msg)
		cv.refresh()
		return cv, cmd
	}

	cv.viewport, cmd = cv.viewport.Update(msg)
	return cv, cmd
}

func wrap(text string, width int) string {
	if width < 1 || lipgloss.Width(text) <= width {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
