package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptModel struct {
	input     textinput.Model
	title     string
	cancelled bool
	done      bool
}

func newPromptModel(title, initial string) promptModel {
	ti := textinput.New()
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	return promptModel{input: ti, title: title}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return titleStyle.Render(m.title) + "\n\n" + m.input.View() + "\n" +
		helpStyle.Render("enter: confirm • esc: cancel")
}

// PromptPath asks for a file path in the terminal, pre-filled with the
// suggested name. Empty input counts as cancelling.
func PromptPath(title, initial string) (string, error) {
	final, err := tea.NewProgram(newPromptModel(title, initial)).Run()
	if err != nil {
		return "", err
	}
	result, ok := final.(promptModel)
	if !ok || result.cancelled {
		return "", ErrCancelled
	}
	value := strings.TrimSpace(result.input.Value())
	if value == "" {
		return "", ErrCancelled
	}
	return value, nil
}
