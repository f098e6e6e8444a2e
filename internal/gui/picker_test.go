package gui

import (
	"errors"
	"testing"

	"imgvault/internal/config"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotted(t *testing.T) {
	assert.Equal(t, []string{".jpg", ".png"}, dotted([]string{"jpg", ".png"}))
	assert.Empty(t, dotted(nil))
}

func TestPickMultiCollectsUntilCancel(t *testing.T) {
	picks := []string{"/a.jpg", "/b.jpg"}
	i := 0
	paths, err := pickMulti(func() (string, error) {
		if i >= len(picks) {
			return "", ErrCancelled
		}
		p := picks[i]
		i++
		return p, nil
	})

	require.NoError(t, err)
	assert.Equal(t, picks, paths)
}

func TestPickMultiStopsOnRepeat(t *testing.T) {
	picks := []string{"/a.jpg", "/b.jpg", "/a.jpg"}
	i := 0
	paths, err := pickMulti(func() (string, error) {
		p := picks[i]
		i++
		return p, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, paths)
}

func TestPickMultiImmediateCancel(t *testing.T) {
	_, err := pickMulti(func() (string, error) { return "", ErrCancelled })
	assert.Equal(t, ErrCancelled, err)
}

func TestPickMultiPropagatesFailure(t *testing.T) {
	boom := errors.New("dialog crashed")
	_, err := pickMulti(func() (string, error) { return "", boom })
	assert.Equal(t, boom, err)
}

func TestNewPickerDebugForcesToolkitDialogs(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	win := app.NewWindow("test")

	cfg := config.NewTestConfig()
	picker := newPicker(cfg, win)

	_, ok := picker.(*fynePicker)
	assert.True(t, ok)
}
