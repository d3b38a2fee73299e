// ABOUTME: Core Bubbletea model and state management for the TUI
// ABOUTME: Holds the conversation state, the transport and the screen components
package tui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/harper/infoflow/internal/config"
	"github.com/harper/infoflow/internal/conversation"
	"github.com/harper/infoflow/internal/tui/components"
	"github.com/harper/infoflow/internal/tui/theme"
)

const (
	headerHeight = 2 // title line plus bottom border
	footerHeight = 1
	statusHeight = 1
)

type Model struct {
	ctx       context.Context
	config    *config.Config
	transport conversation.Transport
	state     conversation.State
	theme     theme.Theme
	width     int
	height    int

	// Components
	chatView      *components.ChatView
	inputArea     *components.InputArea
	statusBar     *components.StatusBar
	helpOverlay   *components.HelpOverlay
	notifications *components.NotificationComponent

	// copyText writes to the system clipboard
	copyText func(string) error
}

// NewModel builds the chat model. Requests run against transport with ctx;
// cancelling ctx abandons an in-flight request.
func NewModel(ctx context.Context, cfg *config.Config, transport conversation.Transport) Model {
	th := theme.GetTheme(cfg.UI.Theme)
	state := conversation.New(th.Name == theme.DarkTheme.Name)

	// Initial dimensions are replaced on the first WindowSizeMsg
	chatView := components.NewChatView(80, 20, th)
	chatView.SetMarkdown(cfg.UI.Markdown)
	inputArea := components.NewInputArea(80, cfg.Input.MinHeight, cfg.Input.MaxHeight, th)
	inputArea.Focus()
	statusBar := components.NewStatusBar(80, th)
	statusBar.SetEndpoint(cfg.Endpoint.URL)

	return Model{
		ctx:           ctx,
		config:        cfg,
		transport:     transport,
		state:         state,
		theme:         th,
		chatView:      chatView,
		inputArea:     inputArea,
		statusBar:     statusBar,
		helpOverlay:   components.NewHelpOverlay(80, 24, th),
		notifications: components.NewNotificationComponent(80, th),
		copyText:      clipboard.WriteAll,
	}
}

func (m Model) Init() tea.Cmd {
	return m.inputArea.Init()
}

// State returns the conversation state the model renders.
func (m Model) State() conversation.State {
	return m.state
}
