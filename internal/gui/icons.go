package gui

import (
	"path/filepath"

	"imgvault/internal/log"

	"fyne.io/fyne/v2"
)

// IconPath builds the path of a named icon inside the icons directory.
// There is no existence check; loading decides whether the file is usable.
func IconPath(iconsDir, name string) string {
	return filepath.Join(iconsDir, name+".png")
}

// Icon loads the named icon as a toolkit resource. A missing or unreadable
// file logs a warning and yields nil, which fyne widgets treat as "no icon".
func Icon(iconsDir, name string) fyne.Resource {
	path := IconPath(iconsDir, name)
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		log.Warnf("could not load icon %s from %s: %v", name, path, err)
		return nil
	}
	return res
}
