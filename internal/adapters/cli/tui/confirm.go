package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is the bubbletea model for a yes/no prompt
type ConfirmModel struct {
	prompt   string
	answer   bool
	answered bool
}

// NewConfirmModel creates a new yes/no prompt
func NewConfirmModel(prompt string) ConfirmModel {
	return ConfirmModel{prompt: prompt}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.answer = true
			m.answered = true
			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.answer = false
			m.answered = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	if m.answered {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.prompt))
	sb.WriteString(" ")
	sb.WriteString(skipStyle.Render("(y/n)"))
	sb.WriteString("\n")
	return sb.String()
}

// Answer returns the user's choice
func (m ConfirmModel) Answer() bool {
	return m.answer
}

// RunConfirm displays a yes/no prompt and returns the answer.
// Declining, cancelling, or a display error all count as "no".
func RunConfirm(prompt string) (bool, error) {
	p := tea.NewProgram(NewConfirmModel(prompt))

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	return finalModel.(ConfirmModel).Answer(), nil
}
