package types

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// KeyStroke is a single keyboard combination: one key plus a modifier mask.
// It is the comparable form of a desktop shortcut.
type KeyStroke struct {
	Key      fyne.KeyName
	Modifier fyne.KeyModifier
}

// StrokeOf extracts the key stroke carried by a toolkit shortcut.
// It reports false for shortcuts that are not keyboard driven.
func StrokeOf(sc fyne.Shortcut) (KeyStroke, bool) {
	ks, ok := sc.(fyne.KeyboardShortcut)
	if !ok {
		return KeyStroke{}, false
	}
	return KeyStroke{Key: ks.Key(), Modifier: ks.Mod()}, true
}

// Shortcut converts the stroke into a desktop shortcut that can be
// registered on a window canvas.
func (k KeyStroke) Shortcut() *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: k.Key, Modifier: k.Modifier}
}

// Action is a named operation with zero or more registered key strokes.
type Action struct {
	ID      string
	Label   string
	Strokes []KeyStroke
	Handler func()
}

// Matches reports whether the stroke exactly equals one of the action's
// registered strokes. Partial modifier matches do not count.
func (a *Action) Matches(stroke KeyStroke) bool {
	for _, s := range a.Strokes {
		if s == stroke {
			return true
		}
	}
	return false
}

// Dispatch runs the handler of the first action whose strokes contain the
// given stroke and reports whether one was found.
func Dispatch(actions []*Action, stroke KeyStroke) bool {
	for _, a := range actions {
		if a.Matches(stroke) {
			if a.Handler != nil {
				a.Handler()
			}
			return true
		}
	}
	return false
}
