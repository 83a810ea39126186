// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m tea.Model, s string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestEditor_SubmitWithCtrlS(t *testing.T) {
	var m tea.Model = newEditor()
	m = typeText(m, "### Intro")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "#### Setup")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, isQuit(t, cmd))

	ed := m.(editorModel)
	assert.True(t, ed.submitted)
	assert.False(t, ed.cancelled)
	assert.Equal(t, "### Intro\n#### Setup", ed.Value())
	assert.Empty(t, ed.View())
}

func TestEditor_CancelWithEsc(t *testing.T) {
	var m tea.Model = newEditor()
	m = typeText(m, "draft")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, isQuit(t, cmd))

	ed := m.(editorModel)
	assert.True(t, ed.cancelled)
	assert.False(t, ed.submitted)
}

func TestEditor_ResizeKeepsMinimumHeight(t *testing.T) {
	var m tea.Model = newEditor()
	m, cmd := m.Update(tea.WindowSizeMsg{Width: 40, Height: 6})
	assert.Nil(t, cmd)
	assert.Equal(t, minEditorHeight, m.(editorModel).area.Height())
	assert.Contains(t, m.View(), "ctrl+s convert")
}

func TestPathInput(t *testing.T) {
	tests := []struct {
		name         string
		defaultName  string
		typed        string
		key          tea.KeyType
		wantAccepted bool
		wantValue    string
	}{
		{name: "accept default", defaultName: "outline.xlsx", key: tea.KeyEnter, wantAccepted: true, wantValue: "outline.xlsx"},
		{name: "typed value appended", defaultName: "", typed: "report", key: tea.KeyEnter, wantAccepted: true, wantValue: "report"},
		{name: "empty answer cancels", key: tea.KeyEnter, wantAccepted: false},
		{name: "esc cancels", defaultName: "outline.xlsx", key: tea.KeyEsc, wantAccepted: false, wantValue: "outline.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = newPathInput(tt.defaultName)
			if tt.typed != "" {
				m = typeText(m, tt.typed)
			}
			m, cmd := m.Update(tea.KeyMsg{Type: tt.key})
			require.True(t, isQuit(t, cmd))

			pm := m.(pathModel)
			assert.Equal(t, tt.wantAccepted, pm.accepted)
			assert.Equal(t, !tt.wantAccepted, pm.cancelled)
			assert.Equal(t, tt.wantValue, pm.Value())
		})
	}
}
