// Package tui provides terminal stand-ins for the GUI file choosers, used
// when no display server is available (headless sessions, ssh).
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled reports that the user backed out of a picker.
var ErrCancelled = errors.New("cancelled")

type pickModel struct {
	picker   filepicker.Model
	title    string
	selected string
	quitting bool
}

func newPickModel(title, startDir string, allowedTypes []string, dirOnly bool) pickModel {
	fp := filepicker.New()
	if startDir != "" {
		fp.CurrentDirectory = startDir
	}
	fp.AllowedTypes = allowedTypes
	fp.DirAllowed = dirOnly
	fp.FileAllowed = !dirOnly
	return pickModel{picker: fp, title: title}
}

func (m pickModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.selected = path
		return m, tea.Quit
	}
	return m, cmd
}

func (m pickModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}
	return titleStyle.Render(m.title) + "\n\n" + m.picker.View() + "\n" +
		helpStyle.Render("enter: select • q/esc: cancel")
}

func runPicker(m pickModel) (string, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	result, ok := final.(pickModel)
	if !ok || result.selected == "" {
		return "", ErrCancelled
	}
	return result.selected, nil
}

// PickFile walks the filesystem from startDir and returns the chosen file.
// allowedTypes holds dotted extensions; empty means any file.
func PickFile(title, startDir string, allowedTypes []string) (string, error) {
	return runPicker(newPickModel(title, startDir, allowedTypes, false))
}

// PickDirectory returns the chosen directory.
func PickDirectory(title, startDir string) (string, error) {
	return runPicker(newPickModel(title, startDir, nil, true))
}
