// Package gui collects the dialog, chooser, window, color, icon, and
// keyboard helpers shared by every ImgVault window. Popups and choosers sit
// behind small capability interfaces so any toolkit backend, or a headless
// test double, can serve them.
package gui

import (
	"errors"

	"imgvault/internal/config"
	"imgvault/pkg/types"

	"fyne.io/fyne/v2"
)

// ErrCancelled reports that the user dismissed a chooser without selecting
// anything. It is an absent result, not a failure.
var ErrCancelled = errors.New("selection cancelled")

// FileFilter describes what a chooser advertises and accepts: a localized
// description plus an extension whitelist (lowercase, no dots).
type FileFilter struct {
	Description string
	Extensions  []string
}

// IntOptions configures an integer input popup. Nil bounds mean unbounded.
type IntOptions struct {
	Value int
	Min   *int
	Max   *int
}

// Prompter is the modal popup capability. Implementations block until the
// user dismisses the dialog.
type Prompter interface {
	Info(title, message string)
	Warning(title, message string)
	Error(title, message string)
	Question(title, message string, withCancel bool) types.Answer
	TextInput(title, message, initial string) (string, bool)
	IntInput(title, message string, opts IntOptions) (int, bool)
}

// Picker is the file chooser capability. Implementations return
// ErrCancelled when the user backs out.
type Picker interface {
	OpenFile(title string, filter FileFilter) (string, error)
	OpenFiles(title string, filter FileFilter) ([]string, error)
	SaveFile(title, suggestedName string, filter FileFilter) (string, error)
	OpenDirectory(title string) (string, error)
}

// Service bundles the popup and chooser capabilities with the configuration
// that drives them.
type Service struct {
	cfg      *config.Config
	prompter Prompter
	picker   Picker
}

// NewService creates a Service with explicit capabilities, mainly for tests.
func NewService(cfg *config.Config, prompter Prompter, picker Picker) *Service {
	return &Service{cfg: cfg, prompter: prompter, picker: picker}
}

// NewWindowService creates a Service wired to the given window: fyne modal
// popups, and the chooser backend selected by the configuration and the
// environment.
func NewWindowService(cfg *config.Config, win fyne.Window) *Service {
	return &Service{
		cfg:      cfg,
		prompter: &fynePrompter{win: win},
		picker:   newPicker(cfg, win),
	}
}
