// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// pathModel asks for the save path. enter accepts, esc and ctrl+c cancel.
type pathModel struct {
	input     textinput.Model
	accepted  bool
	cancelled bool
}

func newPathInput(defaultName string) pathModel {
	ti := textinput.New()
	ti.Prompt = "Save as: "
	ti.Placeholder = "outline.xlsx"
	ti.SetValue(defaultName)
	ti.Width = 60
	ti.Focus()
	return pathModel{input: ti}
}

// Value returns the trimmed answer.
func (m pathModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

func (m pathModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pathModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.accepted = m.Value() != ""
			m.cancelled = !m.accepted
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m pathModel) View() string {
	if m.accepted || m.cancelled {
		return ""
	}
	return titleStyle.Render("Where should the spreadsheet go?") + "\n" +
		m.input.View() + "\n" +
		helpStyle.Render("enter save • esc cancel")
}
