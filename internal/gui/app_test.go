package gui

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"

	"imgvault/internal/config"
	"imgvault/pkg/types"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, prompter Prompter, picker Picker) *App {
	t.Helper()
	fyneApp := test.NewApp()
	cfg := config.NewTestConfig()

	a := &App{
		fyneApp:       fyneApp,
		cfg:           cfg,
		selectedIndex: -1,
		statusColor:   color.NRGBA{R: 16, G: 16, B: 16, A: 255},
	}
	a.mainWindow = fyneApp.NewWindow("test")
	a.service = NewService(cfg, prompter, picker)
	a.buildUI()
	a.registerShortcuts()
	return a
}

func TestAppAddImagesGrowsCollection(t *testing.T) {
	picker := &fakePicker{paths: []string{"/pics/a.jpg", "/pics/b.png"}}
	a := newTestApp(t, &fakePrompter{}, picker)

	a.addImages()

	require.Len(t, a.images, 2)
	assert.Equal(t, "2 images", a.statusText.Text)
}

func TestAppAddImagesCancelledLeavesCollection(t *testing.T) {
	picker := &fakePicker{err: ErrCancelled}
	a := newTestApp(t, &fakePrompter{}, picker)

	a.addImages()

	assert.Empty(t, a.images)
}

func TestAppAddDirectoryWarnsWhenEmpty(t *testing.T) {
	prompter := &fakePrompter{}
	picker := &fakePicker{path: t.TempDir()}
	a := newTestApp(t, prompter, picker)

	a.addDirectory()

	assert.Empty(t, a.images)
	assert.Equal(t, "Warning", prompter.lastTitle)
}

func TestAppRemoveSelectedAsksFirst(t *testing.T) {
	prompter := &fakePrompter{answer: types.AnswerNo}
	a := newTestApp(t, prompter, &fakePicker{})
	a.images = []string{"/pics/a.jpg"}
	a.selectedIndex = 0

	a.removeSelected()
	assert.Len(t, a.images, 1)

	prompter.answer = types.AnswerYes
	a.selectedIndex = 0
	a.removeSelected()
	assert.Empty(t, a.images)
	assert.Equal(t, -1, a.selectedIndex)
}

func TestAppRemoveSelectedNoSelection(t *testing.T) {
	prompter := &fakePrompter{answer: types.AnswerYes}
	a := newTestApp(t, prompter, &fakePicker{})
	a.images = []string{"/pics/a.jpg"}

	a.removeSelected()

	assert.Len(t, a.images, 1)
}

func TestAppSetStatusColorFlipsFontColor(t *testing.T) {
	a := newTestApp(t, &fakePrompter{}, &fakePicker{})

	a.SetStatusColor(color.NRGBA{R: 250, G: 250, B: 250, A: 255})
	assert.Equal(t, black, a.statusText.Color)

	a.SetStatusColor(color.NRGBA{R: 10, G: 10, B: 10, A: 255})
	assert.Equal(t, white, a.statusText.Color)
}

func TestAsyncCallbackReturnsWhileHandlerBlocks(t *testing.T) {
	// Blocking dialogs are fed by the event queue the callback runs on, so
	// the callback must hand the handler off and return right away.
	a := newTestApp(t, &fakePrompter{}, &fakePicker{})
	started := make(chan struct{})
	release := make(chan struct{})
	handler := a.async(func() { close(started); <-release })

	handler()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("handler never ran")
	}
	close(release)
}

func TestTypedKeyDispatchesUnmodifiedStroke(t *testing.T) {
	a := newTestApp(t, &fakePrompter{}, &fakePicker{})
	fired := make(chan struct{})
	a.actions = []*types.Action{{
		ID:      "collection.remove",
		Strokes: []types.KeyStroke{{Key: fyne.KeyDelete}},
		Handler: func() { close(fired) },
	}}

	a.typedKey(&fyne.KeyEvent{Name: fyne.KeyDelete})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("delete key never reached the action")
	}
}

func TestTypedKeyIgnoresUnboundKeys(t *testing.T) {
	a := newTestApp(t, &fakePrompter{}, &fakePicker{})
	fired := make(chan struct{})
	a.actions = []*types.Action{{
		ID:      "collection.remove",
		Strokes: []types.KeyStroke{{Key: fyne.KeyDelete}},
		Handler: func() { close(fired) },
	}}

	a.typedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})

	select {
	case <-fired:
		t.Fatal("unbound key must not dispatch")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestAppRegistersShortcuts(t *testing.T) {
	a := newTestApp(t, &fakePrompter{}, &fakePicker{})

	require.NotEmpty(t, a.actions)
	stroke := types.KeyStroke{Key: "S", Modifier: 0}
	for _, action := range a.actions {
		assert.False(t, action.Matches(stroke), "unmodified S must not trigger %s", action.ID)
	}
}
