package tui

import "github.com/charmbracelet/lipgloss"

var (
	dim = lipgloss.Color("240")

	statusIcons = map[TaskStatus]string{
		StatusPending:  lipgloss.NewStyle().Foreground(dim).Render("○"),
		StatusComplete: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("✓"),
		StatusError:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("✗"),
	}

	taskNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	taskDimStyle  = lipgloss.NewStyle().Foreground(dim)
	countStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	hintStyle     = lipgloss.NewStyle().Foreground(dim).MarginTop(1)
	repoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
)

// statusIcon renders the marker in front of a task; running tasks spin.
func statusIcon(status TaskStatus, spinnerFrame string) string {
	if status == StatusRunning {
		return spinnerStyle.Render(spinnerFrame)
	}
	if icon, ok := statusIcons[status]; ok {
		return icon
	}
	return statusIcons[StatusPending]
}
