package gui

import (
	"imgvault/internal/tui"
)

// termPicker drives the terminal file picker, for sessions without a
// display server.
type termPicker struct {
	startDir string
}

func (p *termPicker) OpenFile(title string, filter FileFilter) (string, error) {
	path, err := tui.PickFile(title, p.startDir, dotted(filter.Extensions))
	return path, mapTermErr(err)
}

func (p *termPicker) OpenFiles(title string, filter FileFilter) ([]string, error) {
	return pickMulti(func() (string, error) { return p.OpenFile(title, filter) })
}

func (p *termPicker) SaveFile(title, suggestedName string, _ FileFilter) (string, error) {
	path, err := tui.PromptPath(title, suggestedName)
	return path, mapTermErr(err)
}

func (p *termPicker) OpenDirectory(title string) (string, error) {
	dir, err := tui.PickDirectory(title, p.startDir)
	return dir, mapTermErr(err)
}

func mapTermErr(err error) error {
	if err == tui.ErrCancelled {
		return ErrCancelled
	}
	return err
}
