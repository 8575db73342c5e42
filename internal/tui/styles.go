package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all the styling for the viewer
type Styles struct {
	Status    lipgloss.Style
	Highlight lipgloss.Style
	Blocked   lipgloss.Style
	Outside   lipgloss.Style
	Help      lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles creates default styles for the viewer
func NewStyles() *Styles {
	return &Styles{
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		Highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("235")).
			Bold(true),
		Blocked: lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Background(lipgloss.Color("235")),
		Outside: lipgloss.NewStyle().
			Foreground(lipgloss.Color("236")),
		Help: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}
