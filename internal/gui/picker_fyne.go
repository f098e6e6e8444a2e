package gui

import (
	"imgvault/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// fynePicker uses the toolkit's portable file dialogs instead of the native
// ones. It is the backend debug mode forces, for environments where native
// dialogs are unavailable or undesirable.
type fynePicker struct {
	win      fyne.Window
	startDir string
}

type pathResult struct {
	path string
	err  error
}

func (p *fynePicker) OpenFile(_ string, filter FileFilter) (string, error) {
	result := make(chan pathResult, 1)
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		switch {
		case err != nil:
			result <- pathResult{err: err}
		case reader == nil:
			result <- pathResult{err: ErrCancelled}
		default:
			path := reader.URI().Path()
			_ = reader.Close()
			result <- pathResult{path: path}
		}
	}, p.win)
	if len(filter.Extensions) > 0 {
		fd.SetFilter(storage.NewExtensionFileFilter(dotted(filter.Extensions)))
	}
	p.setStartLocation(fd)
	fd.Show()

	r := <-result
	return r.path, r.err
}

func (p *fynePicker) OpenFiles(title string, filter FileFilter) ([]string, error) {
	// The toolkit dialog selects a single file per run.
	return pickMulti(func() (string, error) { return p.OpenFile(title, filter) })
}

func (p *fynePicker) SaveFile(_ string, suggestedName string, filter FileFilter) (string, error) {
	result := make(chan pathResult, 1)
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		switch {
		case err != nil:
			result <- pathResult{err: err}
		case writer == nil:
			result <- pathResult{err: ErrCancelled}
		default:
			path := writer.URI().Path()
			_ = writer.Close()
			result <- pathResult{path: path}
		}
	}, p.win)
	if len(filter.Extensions) > 0 {
		fd.SetFilter(storage.NewExtensionFileFilter(dotted(filter.Extensions)))
	}
	fd.SetFileName(suggestedName)
	p.setStartLocation(fd)
	fd.Show()

	r := <-result
	return r.path, r.err
}

func (p *fynePicker) OpenDirectory(_ string) (string, error) {
	result := make(chan pathResult, 1)
	fd := dialog.NewFolderOpen(func(list fyne.ListableURI, err error) {
		switch {
		case err != nil:
			result <- pathResult{err: err}
		case list == nil:
			result <- pathResult{err: ErrCancelled}
		default:
			result <- pathResult{path: list.Path()}
		}
	}, p.win)
	p.setStartLocation(fd)
	fd.Show()

	r := <-result
	return r.path, r.err
}

// setStartLocation points the dialog at the configured default directory.
// The toolkit falls back to its own default when the directory cannot be
// listed.
func (p *fynePicker) setStartLocation(fd *dialog.FileDialog) {
	if p.startDir == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(p.startDir))
	if err != nil {
		log.Debugf("chooser start directory %s unavailable: %v", p.startDir, err)
		return
	}
	fd.SetLocation(lister)
}
