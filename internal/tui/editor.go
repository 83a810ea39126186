// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minEditorHeight = 5
	chromeHeight    = 8
)

// editorModel collects the document text. ctrl+s submits, esc and ctrl+c
// cancel.
type editorModel struct {
	area      textarea.Model
	submitted bool
	cancelled bool
}

func newEditor() editorModel {
	ta := textarea.New()
	ta.Placeholder = "Paste text with ### sections, #### subsections, and - or 1. list items"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(100)
	ta.SetHeight(20)
	ta.Focus()
	return editorModel{area: ta}
}

// Value returns the current text.
func (m editorModel) Value() string {
	return m.area.Value()
}

func (m editorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.area.SetWidth(msg.Width - 4)
		m.area.SetHeight(max(msg.Height-chromeHeight, minEditorHeight))
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlS:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m editorModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("text2xlsx: paste or type the document"))
	b.WriteString("\n")
	b.WriteString(frameStyle.Render(m.area.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+s convert • esc cancel"))
	return b.String()
}
