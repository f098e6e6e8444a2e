// Package platform holds the OS-specific glue the GUI needs: revealing a
// file in the native file manager.
package platform

import (
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"

	"imgvault/internal/log"

	"github.com/godbus/dbus/v5"
)

// D-Bus endpoint implemented by every freedesktop-compliant file manager.
const (
	fileManagerDest = "org.freedesktop.FileManager1"
	fileManagerPath = dbus.ObjectPath("/org/freedesktop/FileManager1")
	fileManagerShow = "org.freedesktop.FileManager1.ShowItems"
)

// Launcher starts a detached external process. It must not wait for the
// process to finish.
type Launcher func(name string, arg ...string) error

// Revealer shows files in the host's file manager. The launcher, bus call,
// and GOOS value are injectable so tests can assert on the constructed
// command instead of spawning anything.
type Revealer struct {
	goos      string
	launch    Launcher
	showItems func(uri string) error
	resolve   func(path string) (string, error)
}

// NewRevealer returns a Revealer wired to the real operating system.
func NewRevealer() *Revealer {
	return &Revealer{
		goos:      runtime.GOOS,
		launch:    startDetached,
		showItems: dbusShowItems,
		resolve:   resolvePath,
	}
}

// Reveal shows the given file in the system's file manager. Failures are
// deliberately swallowed: a path that cannot be resolved (cyclic symlinks)
// or an unrecognized operating system both result in nothing happening.
func (r *Revealer) Reveal(path string) {
	abs, err := r.resolve(path)
	if err != nil {
		log.Debugf("reveal: cannot resolve %q: %v", path, err)
		return
	}

	switch r.goos {
	case "windows":
		_ = r.launch("explorer", "/select,"+abs)
	case "linux":
		if err := r.showItems(fileURI(abs)); err != nil {
			log.Debugf("reveal: file manager bus call failed: %v", err)
		}
	case "darwin":
		_ = r.launch("open", abs)
	}
}

// resolvePath follows symlinks and absolutizes the result. A link cycle
// surfaces as an error from EvalSymlinks.
func resolvePath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

func fileURI(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

func startDetached(name string, arg ...string) error {
	return exec.Command(name, arg...).Start()
}

// dbusShowItems asks the session-bus file manager to highlight the item.
func dbusShowItems(uri string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return err
	}
	obj := conn.Object(fileManagerDest, fileManagerPath)
	return obj.Call(fileManagerShow, 0, []string{uri}, "").Err
}
