package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Warn prints a styled warning line.
func Warn(format string, args ...any) {
	printfLine(warnStyle, "warning: "+format, args...)
}

func printfLine(style lipgloss.Style, format string, args ...any) {
	fmt.Println(style.Render(fmt.Sprintf(format, args...)))
}
