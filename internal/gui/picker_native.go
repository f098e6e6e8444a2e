package gui

import (
	sqdialog "github.com/sqweek/dialog"
)

// nativePicker uses the operating system's own file dialogs.
type nativePicker struct {
	startDir string
}

func (p *nativePicker) OpenFile(title string, filter FileFilter) (string, error) {
	b := sqdialog.File().Title(title)
	if len(filter.Extensions) > 0 {
		b = b.Filter(filter.Description, filter.Extensions...)
	}
	if p.startDir != "" {
		b = b.SetStartDir(p.startDir)
	}
	path, err := b.Load()
	return path, mapNativeErr(err)
}

func (p *nativePicker) OpenFiles(title string, filter FileFilter) ([]string, error) {
	// The native dialogs have no multi-selection support.
	return pickMulti(func() (string, error) { return p.OpenFile(title, filter) })
}

func (p *nativePicker) SaveFile(title, suggestedName string, filter FileFilter) (string, error) {
	b := sqdialog.File().Title(title)
	if len(filter.Extensions) > 0 {
		b = b.Filter(filter.Description, filter.Extensions...)
	}
	if p.startDir != "" {
		b = b.SetStartDir(p.startDir)
	}
	if suggestedName != "" {
		b = b.SetStartFile(suggestedName)
	}
	path, err := b.Save()
	return path, mapNativeErr(err)
}

func (p *nativePicker) OpenDirectory(title string) (string, error) {
	dir, err := sqdialog.Directory().Title(title).Browse()
	return dir, mapNativeErr(err)
}

func mapNativeErr(err error) error {
	if err == sqdialog.ErrCancelled {
		return ErrCancelled
	}
	return err
}
