package tui

import "github.com/charmbracelet/lipgloss"

// ------- minimal styling helpers (Lip Gloss) -------
var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	todayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	starStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	nowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

func panelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
}

// bandStyle paints an activity block in its palette color.
func bandStyle(hex string, completed, selected bool) lipgloss.Style {
	s := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Foreground(lipgloss.Color("15"))
	if completed {
		s = s.Faint(true)
	}
	if selected {
		s = s.Reverse(true).Bold(true)
	}
	return s
}
