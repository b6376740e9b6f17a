package repl

import "github.com/charmbracelet/lipgloss"

var (
	// resultStyle for the stack top printed after each line
	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	// errorStyle for evaluation failures
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func renderResult(color bool, s string) string {
	if !color {
		return s
	}
	return resultStyle.Render(s)
}

func renderError(color bool, err error) string {
	s := "error: " + err.Error()
	if !color {
		return s
	}
	return errorStyle.Render(s)
}
