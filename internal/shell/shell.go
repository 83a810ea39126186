// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shell provides the console adapters that feed a conversion: text
// from a file or stdin, a save path from a flag or a prompt, and a progress
// bar on stderr. The interactive editor lives in package tui.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

const xlsxExt = ".xlsx"

// FileInput reads the whole text from Path, or from Stdin when Path is empty
// or "-".
type FileInput struct {
	Path  string
	Stdin io.Reader
}

// InputText implements convert.InputSource.
func (f FileInput) InputText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.Path == "" || f.Path == "-" {
		in := f.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", f.Path, err)
	}
	return string(data), nil
}

// ResolvePath places a relative path under dir and adds the .xlsx extension
// when the path has none. An empty path stays empty.
func ResolvePath(path, dir string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if filepath.Ext(path) == "" {
		path += xlsxExt
	}
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	return path
}

// StaticPath answers the save-path question with a fixed value, typically a
// command-line flag. An empty Path counts as cancelled.
type StaticPath struct {
	Path string
	Dir  string
}

// SavePath implements convert.PathPrompter.
func (s StaticPath) SavePath(ctx context.Context) (string, bool, error) {
	p := ResolvePath(s.Path, s.Dir)
	return p, p != "", nil
}

// LinePrompt asks for the save path on one line of In. An empty answer takes
// Default; an empty answer without a default cancels.
type LinePrompt struct {
	In      io.Reader
	Out     io.Writer
	Dir     string
	Default string
}

// SavePath implements convert.PathPrompter.
func (p LinePrompt) SavePath(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if p.Default != "" {
		fmt.Fprintf(p.Out, "Save as [%s]: ", p.Default)
	} else {
		fmt.Fprint(p.Out, "Save as: ")
	}

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, fmt.Errorf("reading save path: %w", err)
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		answer = p.Default
	}
	resolved := ResolvePath(answer, p.Dir)
	return resolved, resolved != "", nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
