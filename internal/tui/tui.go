// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is the interactive front end of text2xlsx. It uses bubbletea,
// which follows The Elm Architecture: a model holds the state, Update applies
// key messages to it, and View renders it.
//
// Two small programs run one after the other: an editor for the document
// text and a one-line prompt for the save path.
package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/text2xlsx/internal/shell"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).MarginBottom(1)
	helpStyle  = lipgloss.NewStyle().Faint(true).MarginTop(1)
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
)

// Prompt implements convert.InputSource and convert.PathPrompter with
// terminal UIs. In and Out default to the process terminal when nil.
type Prompt struct {
	In  io.Reader
	Out io.Writer

	// Dir is prepended to relative save paths.
	Dir string

	// DefaultName prefills the save-path prompt.
	DefaultName string
}

func (p Prompt) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if p.In != nil {
		opts = append(opts, tea.WithInput(p.In))
	}
	if p.Out != nil {
		opts = append(opts, tea.WithOutput(p.Out))
	}
	return tea.NewProgram(m, opts...).Run()
}

// InputText opens the editor and returns what was submitted. Cancelling
// returns an empty string, which the caller reports as empty input.
func (p Prompt) InputText(ctx context.Context) (string, error) {
	final, err := p.run(ctx, newEditor())
	if err != nil {
		return "", fmt.Errorf("running editor: %w", err)
	}
	ed, ok := final.(editorModel)
	if !ok || !ed.submitted {
		return "", nil
	}
	return ed.Value(), nil
}

// SavePath asks for the destination. Escape or an empty answer cancels.
func (p Prompt) SavePath(ctx context.Context) (string, bool, error) {
	final, err := p.run(ctx, newPathInput(p.DefaultName))
	if err != nil {
		return "", false, fmt.Errorf("running save prompt: %w", err)
	}
	pm, ok := final.(pathModel)
	if !ok || !pm.accepted {
		return "", false, nil
	}
	resolved := shell.ResolvePath(pm.Value(), p.Dir)
	return resolved, resolved != "", nil
}
