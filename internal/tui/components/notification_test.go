// ABOUTME: Tests for the toast notification system component
// ABOUTME: Verifies notification creation, dismissal, auto-dismiss, and rendering
package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harper/infoflow/internal/tui/theme"
)

func newTestNotifications(width int) *NotificationComponent {
	nc := NewNotificationComponent(width, theme.LightTheme)
	nc.dismissAfter = time.Millisecond
	return nc
}

func TestNotificationCreation(t *testing.T) {
	nc := newTestNotifications(80)

	if nc.Len() != 0 {
		t.Errorf("Expected 0 notifications initially, got %d", nc.Len())
	}

	cmd := nc.Show("Test message", SeverityInfo)
	if cmd == nil {
		t.Error("Expected Show to return a command for auto-dismiss")
	}

	if nc.Len() != 1 {
		t.Fatalf("Expected 1 notification after Show, got %d", nc.Len())
	}

	notif := nc.notifications[0]
	if notif.Message != "Test message" {
		t.Errorf("Expected message 'Test message', got '%s'", notif.Message)
	}
	if notif.Severity != SeverityInfo {
		t.Errorf("Expected severity 'info', got '%s'", notif.Severity)
	}
	if notif.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestNotificationMaxLimit(t *testing.T) {
	nc := newTestNotifications(80)

	for i := 0; i < 5; i++ {
		_ = nc.Show("Message", SeverityInfo)
	}

	if nc.Len() != maxNotifications {
		t.Errorf("Expected max %d notifications, got %d", maxNotifications, nc.Len())
	}
	if nc.notifications[0].ID != 3 {
		t.Errorf("Expected the oldest kept notification to be #3, got #%d", nc.notifications[0].ID)
	}
}

func TestNotificationDismissByID(t *testing.T) {
	nc := newTestNotifications(80)

	first := nc.Show("Message 1", SeverityInfo)
	_ = nc.Show("Message 2", SeverityWarning)

	_ = nc.Update(first())

	if nc.Len() != 1 {
		t.Fatalf("Expected 1 notification after dismiss, got %d", nc.Len())
	}
	if nc.notifications[0].Message != "Message 2" {
		t.Errorf("Expected remaining notification to be 'Message 2', got '%s'", nc.notifications[0].Message)
	}
}

func TestNotificationDismissAfterEviction(t *testing.T) {
	nc := newTestNotifications(80)

	cmds := make([]tea.Cmd, 0, 4)
	for i := 0; i < 4; i++ {
		cmds = append(cmds, nc.Show("Message", SeverityInfo))
	}

	// The first toast was already evicted; its timer must not remove another one.
	_ = nc.Update(cmds[0]())
	if nc.Len() != 3 {
		t.Errorf("Expected 3 notifications, got %d", nc.Len())
	}

	_ = nc.Update(cmds[3]())
	if nc.Len() != 2 {
		t.Errorf("Expected 2 notifications, got %d", nc.Len())
	}
}

func TestNotificationDismissUnknownID(t *testing.T) {
	nc := newTestNotifications(80)
	_ = nc.Show("Test", SeverityInfo)

	nc.Dismiss(-1)
	nc.Dismiss(10)

	if nc.Len() != 1 {
		t.Errorf("Expected 1 notification after invalid dismiss, got %d", nc.Len())
	}
}

func TestNotificationRenderingSeverities(t *testing.T) {
	testCases := []struct {
		severity     string
		expectedIcon string
	}{
		{SeverityInfo, "ℹ️"},
		{SeverityWarning, "⚠️"},
		{SeverityError, "❌"},
		{SeveritySuccess, "✅"},
	}

	for _, tc := range testCases {
		t.Run(tc.severity, func(t *testing.T) {
			nc := newTestNotifications(80)
			_ = nc.Show("Test message", tc.severity)

			output := nc.View()

			if !strings.Contains(output, tc.expectedIcon) {
				t.Errorf("Expected output to contain icon '%s' for severity '%s', got: %s", tc.expectedIcon, tc.severity, output)
			}
			if !strings.Contains(output, "Test message") {
				t.Errorf("Expected output to contain 'Test message', got: %s", output)
			}
		})
	}
}

func TestNotificationRenderingEmpty(t *testing.T) {
	nc := newTestNotifications(80)

	if output := nc.View(); output != "" {
		t.Errorf("Expected empty output with no notifications, got: %s", output)
	}
}

func TestNotificationUpdateWithUnrelatedMessage(t *testing.T) {
	nc := newTestNotifications(80)
	_ = nc.Show("Test", SeverityInfo)

	cmd := nc.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})

	if cmd != nil {
		t.Error("Expected nil command for unrelated message")
	}
	if nc.Len() != 1 {
		t.Errorf("Expected 1 notification after unrelated message, got %d", nc.Len())
	}
}

func TestNotificationMessageWrapping(t *testing.T) {
	nc := newTestNotifications(30)

	_ = nc.Show("This is a very long message that should wrap across multiple lines", SeverityInfo)

	output := nc.View()
	if !strings.Contains(output, "very long") {
		t.Errorf("Expected output to contain wrapped message, got: %s", output)
	}
}
