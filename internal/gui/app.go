package gui

import (
	"fmt"
	"image/color"

	"imgvault/internal/config"
	"imgvault/internal/log"
	"imgvault/internal/platform"
	"imgvault/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// App is the GUI application.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	service    *Service
	revealer   *platform.Revealer

	// Collection shown in the main list
	images        []string
	selectedIndex int

	imageList   *widget.List
	statusBar   *canvas.Rectangle
	statusText  *canvas.Text
	statusColor color.NRGBA

	actions []*types.Action
}

// NewApp creates a new GUI application.
func NewApp(cfg *config.Config) *App {
	// Unique ID for preferences storage
	fyneApp := app.NewWithID("io.github.imgvault")

	if icon := Icon(cfg.Icons.Dir, "imgvault"); icon != nil {
		fyneApp.SetIcon(icon)
	}

	a := &App{
		fyneApp:       fyneApp,
		cfg:           cfg,
		revealer:      platform.NewRevealer(),
		selectedIndex: -1,
		statusColor:   color.NRGBA{R: 16, G: 16, B: 16, A: 255},
	}

	a.mainWindow = fyneApp.NewWindow("ImgVault")
	a.service = NewWindowService(cfg, a.mainWindow)

	a.buildUI()
	a.registerShortcuts()

	return a
}

// GetMainWindow returns the main window instance.
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Service exposes the dialog helpers bound to the main window.
func (a *App) Service() *Service {
	return a.service
}

func (a *App) buildUI() {
	a.imageList = widget.NewList(
		func() int { return len(a.images) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(a.images[i])
		},
	)
	a.imageList.OnSelected = func(id widget.ListItemID) {
		a.selectedIndex = id
	}
	a.imageList.OnUnselected = func(widget.ListItemID) {
		a.selectedIndex = -1
	}

	toolbar := container.NewHBox(
		widget.NewButton("Add Images", a.async(a.addImages)),
		widget.NewButton("Add Directory", a.async(a.addDirectory)),
		widget.NewButton("Open Database", a.async(a.openDatabase)),
		widget.NewButton("Save Playlist", a.async(a.savePlaylist)),
		widget.NewButton("Reveal", a.async(a.revealSelected)),
		widget.NewButton("Remove", a.async(a.removeSelected)),
	)

	a.statusBar = canvas.NewRectangle(a.statusColor)
	a.statusText = canvas.NewText("Ready", FontColor(a.statusColor))
	status := container.NewStack(a.statusBar, container.NewPadded(a.statusText))

	a.mainWindow.SetContent(container.NewBorder(toolbar, status, nil, nil, a.imageList))
	a.mainWindow.Resize(fyne.NewSize(720, 480))
}

// registerShortcuts binds the keyboard actions to the window canvas.
func (a *App) registerShortcuts() {
	a.actions = []*types.Action{
		{
			ID:      "images.add",
			Label:   "Add Images",
			Strokes: []types.KeyStroke{{Key: fyne.KeyO, Modifier: fyne.KeyModifierControl}},
			Handler: a.addImages,
		},
		{
			ID:      "images.add_directory",
			Label:   "Add Directory",
			Strokes: []types.KeyStroke{{Key: fyne.KeyO, Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift}},
			Handler: a.addDirectory,
		},
		{
			ID:      "playlist.save",
			Label:   "Save Playlist",
			Strokes: []types.KeyStroke{{Key: fyne.KeyS, Modifier: fyne.KeyModifierControl}},
			Handler: a.savePlaylist,
		},
		{
			ID:      "images.reveal",
			Label:   "Reveal in File Manager",
			Strokes: []types.KeyStroke{{Key: fyne.KeyR, Modifier: fyne.KeyModifierControl}},
			Handler: a.revealSelected,
		},
		{
			ID:      "images.remove",
			Label:   "Remove",
			Strokes: []types.KeyStroke{{Key: fyne.KeyDelete}},
			Handler: a.removeSelected,
		},
	}

	for _, action := range a.actions {
		for _, stroke := range action.Strokes {
			if stroke.Modifier == 0 {
				// Unmodified keys never reach the shortcut registry;
				// typedKey delivers them.
				continue
			}
			stroke := stroke
			a.mainWindow.Canvas().AddShortcut(stroke.Shortcut(), func(fyne.Shortcut) {
				go types.Dispatch(a.actions, stroke)
			})
		}
	}
	a.mainWindow.Canvas().SetOnTypedKey(a.typedKey)
}

// typedKey routes plain key presses (Delete and friends) to the matching
// action.
func (a *App) typedKey(ev *fyne.KeyEvent) {
	go types.Dispatch(a.actions, types.KeyStroke{Key: ev.Name})
}

// async wraps a handler so the event callback returns immediately. The
// dialog service blocks until the user answers, and its dialogs are fed by
// the same event queue the callback runs on, so the handler must leave that
// goroutine first.
func (a *App) async(fn func()) func() {
	return func() { go fn() }
}

func (a *App) addImages() {
	paths := a.service.OpenFilesChooser(types.FilterImages)
	if len(paths) == 0 {
		return
	}
	a.appendImages(paths)
}

func (a *App) addDirectory() {
	paths, ok := a.service.OpenDirectoryImages()
	if !ok {
		return
	}
	if len(paths) == 0 {
		a.service.ShowWarning("The selected directory contains no images.")
		return
	}
	a.appendImages(paths)
}

func (a *App) openDatabase() {
	path, ok := a.service.OpenFileChooser(types.FilterDatabase)
	if !ok {
		return
	}
	// Opening the collection itself lives in the storage layer; here the
	// chooser result is just surfaced.
	a.setStatus(fmt.Sprintf("Database: %s", path))
}

func (a *App) savePlaylist() {
	if len(a.images) == 0 {
		a.service.ShowWarning("Nothing to save: the collection is empty.")
		return
	}
	path, ok := a.service.OpenPlaylistSaver()
	if !ok {
		return
	}
	a.setStatus(fmt.Sprintf("Playlist: %s", path))
}

func (a *App) revealSelected() {
	if a.selectedIndex < 0 || a.selectedIndex >= len(a.images) {
		return
	}
	a.revealer.Reveal(a.images[a.selectedIndex])
}

func (a *App) removeSelected() {
	i := a.selectedIndex
	if i < 0 || i >= len(a.images) {
		return
	}
	answer := a.service.ShowQuestion("Remove the selected image from the collection?", false)
	if answer != types.AnswerYes {
		return
	}
	a.images = append(a.images[:i], a.images[i+1:]...)
	a.selectedIndex = -1
	a.imageList.UnselectAll()
	a.imageList.Refresh()
	a.setStatus(fmt.Sprintf("%d images", len(a.images)))
}

func (a *App) appendImages(paths []string) {
	a.images = append(a.images, paths...)
	a.imageList.Refresh()
	a.setStatus(fmt.Sprintf("%d images", len(a.images)))
	log.Debugf("collection grew to %d images", len(a.images))
}

// setStatus updates the status bar text, keeping the text color readable
// against the bar's background.
func (a *App) setStatus(text string) {
	a.statusText.Text = text
	a.statusText.Color = FontColor(a.statusColor)
	a.statusText.Refresh()
}

// SetStatusColor changes the status bar background and flips the text to
// whichever of black or white contrasts best.
func (a *App) SetStatusColor(bg color.NRGBA) {
	a.statusColor = bg
	a.statusBar.FillColor = bg
	a.statusBar.Refresh()
	a.statusText.Color = FontColor(bg)
	a.statusText.Refresh()
}

// Run shows the main window centered on screen and enters the event loop.
func (a *App) Run() {
	Center(a.mainWindow)
	a.mainWindow.ShowAndRun()
}
