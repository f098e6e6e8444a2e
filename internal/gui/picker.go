package gui

import (
	"os"
	"runtime"
	"strings"

	"imgvault/internal/config"

	"fyne.io/fyne/v2"
)

// newPicker selects the chooser backend. Debug mode forces the toolkit's
// own (non-native) dialogs; without a display server the terminal picker
// takes over; otherwise the platform-native dialogs are used.
func newPicker(cfg *config.Config, win fyne.Window) Picker {
	startDir := cfg.Directories.Default
	if cfg.Settings.Debug && win != nil {
		return &fynePicker{win: win, startDir: startDir}
	}
	if !displayAvailable() {
		return &termPicker{startDir: startDir}
	}
	return &nativePicker{startDir: startDir}
}

func displayAvailable() bool {
	if runtime.GOOS != "linux" {
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// dotted prefixes every extension with a dot, the form toolkit filters
// expect.
func dotted(extensions []string) []string {
	out := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		out = append(out, "."+strings.TrimPrefix(ext, "."))
	}
	return out
}

// pickMulti emulates multi-selection on backends whose dialogs select one
// file at a time: it keeps asking until the user cancels or re-picks a
// file.
func pickMulti(pick func() (string, error)) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for {
		path, err := pick()
		if err == ErrCancelled {
			break
		}
		if err != nil {
			return nil, err
		}
		if seen[path] {
			break
		}
		seen[path] = true
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return nil, ErrCancelled
	}
	return paths, nil
}
