package chat

import "github.com/charmbracelet/lipgloss"

var (
	// userStyle for the user's prompt label
	userStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))

	// assistantStyle for assistant reply labels
	assistantStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

	// systemStyle for tool output labels
	systemStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("246"))

	// dimStyle for separators and metadata
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func roleStyle(role string) lipgloss.Style {
	switch role {
	case "user":
		return userStyle
	case "assistant":
		return assistantStyle
	default:
		return systemStyle
	}
}

func roleLabel(role string) string {
	switch role {
	case "user":
		return "User"
	case "assistant":
		return "Assistant"
	default:
		return "System"
	}
}
