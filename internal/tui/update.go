// ABOUTME: Update logic for the TUI (handles all messages and state transitions)
// ABOUTME: Maps key presses onto conversation transitions and runs transport requests
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/harper/infoflow/internal/conversation"
	"github.com/harper/infoflow/internal/logger"
	"github.com/harper/infoflow/internal/tui/components"
	"github.com/harper/infoflow/internal/tui/theme"
)

// answerMsg carries the outcome of the request with the given id.
type answerMsg struct {
	ID      string
	Outcome conversation.Outcome
}

// copiedMsg reports the result of a clipboard write.
type copiedMsg struct {
	Err error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.updateComponentSizes()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case answerMsg:
		if msg.ID != m.state.Pending() {
			logger.Debug("dropping stale answer for request %s", msg.ID)
			return m, nil
		}
		m.state = m.state.Resolve(msg.ID, msg.Outcome)
		if last, ok := m.state.Last(); ok && last.Role == conversation.RoleError {
			logger.Debug("request %s settled with error entry: %s", msg.ID, last.Text)
		}
		return m, m.sync()

	case copiedMsg:
		if msg.Err != nil {
			logger.Warn("clipboard write failed: %v", msg.Err)
			return m, m.notifications.Show("Could not copy to clipboard", components.SeverityError)
		}
		return m, m.notifications.Show("Answer copied to clipboard", components.SeveritySuccess)

	case components.DismissNotificationMsg:
		return m, m.notifications.Update(msg)

	case tea.MouseMsg:
		_, cmd := m.chatView.Update(msg)
		return m, cmd
	}

	// Spinner ticks and cursor blinks
	var cmds []tea.Cmd
	_, cmd := m.chatView.Update(msg)
	cmds = append(cmds, cmd)
	_, cmd = m.inputArea.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keys := components.Keys

	// Help overlay gets priority
	if m.helpOverlay.IsVisible() {
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help, keys.Close):
			m.helpOverlay.Hide()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.helpOverlay.Toggle()
		return m, nil

	case key.Matches(msg, keys.Theme):
		m.state = m.state.ToggleTheme()
		return m, m.sync()

	case key.Matches(msg, keys.Copy):
		answer, ok := m.state.LastAnswer()
		if !ok {
			return m, m.notifications.Show("No answer to copy yet", components.SeverityWarning)
		}
		return m, copyCmd(m.copyText, answer)

	case key.Matches(msg, keys.PageUp, keys.PageDown):
		_, cmd := m.chatView.Update(msg)
		return m, cmd
	}

	next, req, handled := m.state.SubmitOnEnter(keyEventFor(msg))
	if handled {
		m.state = next
		if req == nil {
			return m, nil
		}
		logger.Debug("submitting request %s (%d bytes)", req.ID, len(req.Query))
		m.inputArea.Clear()
		return m, tea.Batch(m.sync(), askCmd(m.ctx, m.transport, *req))
	}

	_, cmd := m.inputArea.Update(msg)
	m.state = m.state.UpdateDraft(m.inputArea.GetValue())
	// soft wraps count too
	m.inputArea.Fit(max(m.state.DraftLines(), m.inputArea.VisualLines()))
	return m, cmd
}

// keyEventFor translates a terminal key. Alt+Enter and Ctrl+J are reported as
// Shift+Enter because terminals cannot distinguish Shift+Enter from Enter.
func keyEventFor(msg tea.KeyMsg) conversation.KeyEvent {
	switch msg.Type {
	case tea.KeyEnter:
		return conversation.KeyEvent{Key: conversation.KeyEnter, Shift: msg.Alt}
	case tea.KeyCtrlJ:
		return conversation.KeyEvent{Key: conversation.KeyEnter, Shift: true}
	default:
		return conversation.KeyEvent{Key: msg.String()}
	}
}

// askCmd runs req in the background and reports its outcome as an answerMsg.
func askCmd(ctx context.Context, t conversation.Transport, req conversation.Request) tea.Cmd {
	return func() tea.Msg {
		return answerMsg{ID: req.ID, Outcome: req.Run(ctx, t)}
	}
}

func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{Err: write(text)}
	}
}

// sync pushes the conversation state into the components.
func (m *Model) sync() tea.Cmd {
	if th := theme.ForDark(m.state.Dark()); th.Name != m.theme.Name {
		m.applyTheme(th)
	}

	m.chatView.SetMessages(m.state.Transcript())
	m.statusBar.SetBusy(m.state.Busy())
	m.statusBar.SetMessageCount(m.state.Len())

	return tea.Batch(
		m.chatView.SetBusy(m.state.Busy()),
		m.inputArea.SetDisabled(m.state.Busy()),
	)
}

func (m *Model) applyTheme(th theme.Theme) {
	m.theme = th
	m.chatView.SetTheme(th)
	m.inputArea.SetTheme(th)
	m.statusBar.SetTheme(th)
	m.helpOverlay.SetTheme(th)
	m.notifications.SetTheme(th)
}

// updateComponentSizes recalculates and applies sizes to all components based on window dimensions
func (m *Model) updateComponentSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}

	m.inputArea.SetWidth(m.width)
	chatHeight := m.height - headerHeight - footerHeight - statusHeight - m.inputArea.Height()
	if chatHeight < 1 {
		chatHeight = 1
	}

	m.chatView.SetSize(m.width, chatHeight)
	m.statusBar.SetSize(m.width)
	m.helpOverlay.SetSize(m.width, m.height)
}
