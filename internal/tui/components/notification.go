// ABOUTME: Toast notification system for displaying temporary messages
// ABOUTME: Supports info, warning, error, and success severities with auto-dismiss
package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harper/infoflow/internal/tui/theme"
)

const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
	SeveritySuccess = "success"
)

// Notification represents a single toast notification.
type Notification struct {
	ID        int
	Message   string
	Severity  string
	CreatedAt time.Time
}

// NotificationComponent manages toast notifications.
type NotificationComponent struct {
	notifications []*Notification
	maxVisible    int
	width         int
	theme         theme.Theme
	dismissAfter  time.Duration
	nextID        int
}

// DismissNotificationMsg is sent to dismiss a notification.
type DismissNotificationMsg struct {
	ID int
}

const (
	maxNotifications  = 3
	notificationWidth = 40
	autoDismissDelay  = 3 * time.Second
)

func NewNotificationComponent(width int, th theme.Theme) *NotificationComponent {
	return &NotificationComponent{
		notifications: make([]*Notification, 0, maxNotifications),
		maxVisible:    maxNotifications,
		width:         width,
		theme:         th,
		dismissAfter:  autoDismissDelay,
	}
}

// Show displays a new notification and returns its auto-dismiss command.
// Only the most recent notifications are kept.
func (nc *NotificationComponent) Show(message string, severity string) tea.Cmd {
	nc.nextID++
	notif := &Notification{
		ID:        nc.nextID,
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}

	nc.notifications = append(nc.notifications, notif)
	if len(nc.notifications) > nc.maxVisible {
		nc.notifications = nc.notifications[len(nc.notifications)-nc.maxVisible:]
	}

	id := notif.ID
	return tea.Tick(nc.dismissAfter, func(time.Time) tea.Msg {
		return DismissNotificationMsg{ID: id}
	})
}

// Dismiss removes the notification with the given id. Unknown ids are ignored.
func (nc *NotificationComponent) Dismiss(id int) {
	for i, n := range nc.notifications {
		if n.ID == id {
			nc.notifications = append(nc.notifications[:i], nc.notifications[i+1:]...)
			return
		}
	}
}

func (nc *NotificationComponent) Len() int {
	return len(nc.notifications)
}

func (nc *NotificationComponent) SetTheme(th theme.Theme) {
	nc.theme = th
}

func (nc *NotificationComponent) Update(msg tea.Msg) tea.Cmd {
	if dismissMsg, ok := msg.(DismissNotificationMsg); ok {
		nc.Dismiss(dismissMsg.ID)
	}
	return nil
}

// View renders the notifications as a vertical stack.
func (nc *NotificationComponent) View() string {
	if len(nc.notifications) == 0 {
		return ""
	}

	width := min(notificationWidth, nc.width)
	views := make([]string, 0, len(nc.notifications))

	for _, notif := range nc.notifications {
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(nc.borderColor(notif.Severity)).
			Padding(0, 1).
			Width(width)

		views = append(views, style.Render(icon(notif.Severity)+" "+notif.Message))
	}

	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

func icon(severity string) string {
	switch severity {
	case SeverityWarning:
		return "⚠️"
	case SeverityError:
		return "❌"
	case SeveritySuccess:
		return "✅"
	default:
		return "ℹ️"
	}
}

func (nc *NotificationComponent) borderColor(severity string) lipgloss.Color {
	switch severity {
	case SeverityWarning:
		return nc.theme.Warning
	case SeverityError:
		return nc.theme.Error
	case SeveritySuccess:
		return nc.theme.Success
	default:
		return nc.theme.UserMsg
	}
}
