// ABOUTME: Light and dark themes for the TUI, styled with lipgloss
// ABOUTME: Provides the palette and style constructors used by components
package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	ErrorBg    lipgloss.Color
	UserMsg    lipgloss.Color
	AgentMsg   lipgloss.Color
	Dim        lipgloss.Color
}

var LightTheme = Theme{
	Name:       "light",
	Primary:    lipgloss.Color("#A855F7"), // Purple
	Accent:     lipgloss.Color("#EC4899"), // Pink
	Background: lipgloss.Color("#FFFFFF"), // White
	Foreground: lipgloss.Color("#1F2937"), // Gray 800
	Surface:    lipgloss.Color("#F9FAFB"), // Gray 50
	Border:     lipgloss.Color("#E5E7EB"), // Gray 200
	Success:    lipgloss.Color("#4ADE80"), // Green
	Warning:    lipgloss.Color("#CA8A04"), // Yellow
	Error:      lipgloss.Color("#991B1B"), // Red 800
	ErrorBg:    lipgloss.Color("#FEF2F2"), // Red 50
	UserMsg:    lipgloss.Color("#3B82F6"), // Blue
	AgentMsg:   lipgloss.Color("#1F2937"), // Gray 800
	Dim:        lipgloss.Color("#9CA3AF"), // Gray 400
}

var DarkTheme = Theme{
	Name:       "dark",
	Primary:    lipgloss.Color("#A855F7"), // Purple
	Accent:     lipgloss.Color("#EC4899"), // Pink
	Background: lipgloss.Color("#111827"), // Gray 900
	Foreground: lipgloss.Color("#F3F4F6"), // Gray 100
	Surface:    lipgloss.Color("#1F2937"), // Gray 800
	Border:     lipgloss.Color("#374151"), // Gray 700
	Success:    lipgloss.Color("#4ADE80"), // Green
	Warning:    lipgloss.Color("#FACC15"), // Yellow 400
	Error:      lipgloss.Color("#FCA5A5"), // Red 300
	ErrorBg:    lipgloss.Color("#3B1515"), // Red 900/20
	UserMsg:    lipgloss.Color("#3B82F6"), // Blue
	AgentMsg:   lipgloss.Color("#F3F4F6"), // Gray 100
	Dim:        lipgloss.Color("#6B7280"), // Gray 500
}

func GetTheme(name string) Theme {
	if name == "dark" {
		return DarkTheme
	}
	return LightTheme
}

// ForDark maps the theme flag to a theme.
func ForDark(dark bool) Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}

// Style constructors

func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border)
}

func (t Theme) LogoStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)
}

func (t Theme) ChatViewStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Foreground).
		Padding(0, 1)
}

func (t Theme) UserBubbleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.UserMsg).
		Padding(0, 1)
}

func (t Theme) AssistantBubbleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.AgentMsg).
		Background(t.Surface).
		Padding(0, 1)
}

func (t Theme) ErrorBubbleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Error).
		Background(t.ErrorBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Error).
		Padding(0, 1)
}

func (t Theme) InputAreaStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Foreground).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
}

func (t Theme) StatusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.Color("#FFFFFF")).
		Padding(0, 1)
}

func (t Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)
}

func (t Theme) SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Success)
}

func (t Theme) DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Dim)
}
