package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickModelQuitsOnEscape(t *testing.T) {
	m := newPickModel("Choose an image", t.TempDir(), []string{".png"}, false)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	result, ok := next.(pickModel)
	require.True(t, ok)

	assert.True(t, result.quitting)
	assert.NotNil(t, cmd)
}

func TestPickModelQuitsOnQ(t *testing.T) {
	m := newPickModel("Choose an image", t.TempDir(), nil, false)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	result := next.(pickModel)

	assert.True(t, result.quitting)
}

func TestNewPickModelFileMode(t *testing.T) {
	dir := t.TempDir()
	m := newPickModel("Choose an image", dir, []string{".png", ".jpg"}, false)

	assert.Equal(t, dir, m.picker.CurrentDirectory)
	assert.Equal(t, []string{".png", ".jpg"}, m.picker.AllowedTypes)
	assert.True(t, m.picker.FileAllowed)
	assert.False(t, m.picker.DirAllowed)
}

func TestNewPickModelDirectoryMode(t *testing.T) {
	m := newPickModel("Choose a directory", t.TempDir(), nil, true)

	assert.True(t, m.picker.DirAllowed)
	assert.False(t, m.picker.FileAllowed)
}

func TestPickModelViewShowsTitleAndHelp(t *testing.T) {
	m := newPickModel("Choose an image", t.TempDir(), nil, false)

	view := m.View()
	assert.Contains(t, view, "Choose an image")
	assert.Contains(t, view, "cancel")
}
