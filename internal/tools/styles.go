package tools

import "github.com/charmbracelet/lipgloss"

var (
	// previewStyle for the header shown before a confirmation prompt
	previewStyle = lipgloss.NewStyle().Bold(true)

	// codeStyle for the command or source about to run
	codeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	// warnStyle for confirmation prompts guarding side effects
	warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	// dimStyle for skipped-action diagnostics
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
