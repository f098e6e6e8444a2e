package gui

import "fyne.io/fyne/v2"

// centerOffset computes the top-left position that aligns the center of a
// window of the given size with the center of the screen. Offsets can be
// negative when the window is larger than the screen.
func centerOffset(window, screen fyne.Size) fyne.Position {
	return fyne.NewPos((screen.Width-window.Width)/2, (screen.Height-window.Height)/2)
}

// Center repositions the window so its frame center matches the primary
// screen's center.
func Center(w fyne.Window) {
	// The toolkit owns screen geometry, so delegate to it.
	w.CenterOnScreen()
}
