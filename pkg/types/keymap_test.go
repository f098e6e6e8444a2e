package types

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

func TestStrokeOf(t *testing.T) {
	stroke := KeyStroke{Key: fyne.KeyS, Modifier: fyne.KeyModifierControl}

	got, ok := StrokeOf(stroke.Shortcut())
	assert.True(t, ok)
	assert.Equal(t, stroke, got)
}

func TestStrokeOfNonKeyboardShortcut(t *testing.T) {
	// Clipboard shortcuts carry no key stroke.
	_, ok := StrokeOf(&fyne.ShortcutCopy{})
	assert.True(t, ok, "clipboard shortcuts are keyboard shortcuts in fyne")

	_, ok = StrokeOf(fakeShortcut{})
	assert.False(t, ok)
}

type fakeShortcut struct{}

func (fakeShortcut) ShortcutName() string { return "fake" }

func TestActionMatchesExactOnly(t *testing.T) {
	action := &Action{
		ID:    "save-playlist",
		Label: "Save Playlist",
		Strokes: []KeyStroke{
			{Key: fyne.KeyS, Modifier: fyne.KeyModifierControl},
			{Key: fyne.KeyF12},
		},
	}

	tests := []struct {
		name   string
		stroke KeyStroke
		want   bool
	}{
		{"registered with modifier", KeyStroke{Key: fyne.KeyS, Modifier: fyne.KeyModifierControl}, true},
		{"registered without modifier", KeyStroke{Key: fyne.KeyF12}, true},
		{"same key, missing modifier", KeyStroke{Key: fyne.KeyS}, false},
		{"same key, extra modifier", KeyStroke{Key: fyne.KeyS, Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift}, false},
		{"different key", KeyStroke{Key: fyne.KeyA, Modifier: fyne.KeyModifierControl}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, action.Matches(tt.stroke))
		})
	}
}

func TestDispatch(t *testing.T) {
	var ran []string
	actions := []*Action{
		{ID: "first", Strokes: []KeyStroke{{Key: fyne.KeyA}}, Handler: func() { ran = append(ran, "first") }},
		{ID: "second", Strokes: []KeyStroke{{Key: fyne.KeyB}}, Handler: func() { ran = append(ran, "second") }},
	}

	assert.True(t, Dispatch(actions, KeyStroke{Key: fyne.KeyB}))
	assert.Equal(t, []string{"second"}, ran)

	assert.False(t, Dispatch(actions, KeyStroke{Key: fyne.KeyC}))
	assert.Equal(t, []string{"second"}, ran)
}

func TestDispatchNilHandler(t *testing.T) {
	actions := []*Action{{ID: "noop", Strokes: []KeyStroke{{Key: fyne.KeyA}}}}
	assert.True(t, Dispatch(actions, KeyStroke{Key: fyne.KeyA}))
}
