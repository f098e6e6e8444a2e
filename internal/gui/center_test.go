package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func TestCenterOffset(t *testing.T) {
	tests := []struct {
		name   string
		window fyne.Size
		screen fyne.Size
		want   fyne.Position
	}{
		{"smaller window", fyne.NewSize(400, 300), fyne.NewSize(1920, 1080), fyne.NewPos(760, 390)},
		{"same size", fyne.NewSize(800, 600), fyne.NewSize(800, 600), fyne.NewPos(0, 0)},
		{"window larger than screen", fyne.NewSize(1000, 800), fyne.NewSize(800, 600), fyne.NewPos(-100, -100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, centerOffset(tt.window, tt.screen))
		})
	}
}

func TestCenterOffsetIsCentered(t *testing.T) {
	window := fyne.NewSize(412, 217)
	screen := fyne.NewSize(1366, 768)
	pos := centerOffset(window, screen)

	assert.InDelta(t, screen.Width/2, pos.X+window.Width/2, 0.5)
	assert.InDelta(t, screen.Height/2, pos.Y+window.Height/2, 0.5)
}

func TestCenterDoesNotPanic(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	w := app.NewWindow("centered")
	w.SetContent(widget.NewLabel("content"))
	assert.NotPanics(t, func() { Center(w) })
}
