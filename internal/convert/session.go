// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/text2xlsx/pkg/types"
)

// InputSource supplies the raw text of one conversion. It may block, for
// example while a user types into an editor.
type InputSource interface {
	InputText(ctx context.Context) (string, error)
}

// PathPrompter supplies the destination path. ok is false when the user
// declined to choose one.
type PathPrompter interface {
	SavePath(ctx context.Context) (path string, ok bool, err error)
}

// Revealer shows a directory to the user after a successful save.
type Revealer interface {
	Reveal(dir string) error
}

// Recorder stores the outcome of a conversion attempt.
type Recorder interface {
	Record(ctx context.Context, rec types.ConversionRecord) error
}

// Session wires one conversion to its collaborators. Input and Path are
// required; the remaining hooks are optional.
type Session struct {
	// Source labels the input in history records ("-", a path, or "tui").
	Source string

	Input    InputSource
	Path     PathPrompter
	Reveal   Revealer
	Recorder Recorder
	Options  Options

	// Log receives status lines; nil discards them.
	Log io.Writer
}

// Run acquires the text, rejects blank input, asks for a destination, and
// converts. The steps run in that order so a user is never asked where to
// save an empty document.
func Run(ctx context.Context, s Session) (Result, error) {
	log := s.Log
	if log == nil {
		log = io.Discard
	}

	text, err := s.Input.InputText(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("reading input: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		s.record(ctx, log, "", Result{}, ErrEmptyInput)
		return Result{}, ErrEmptyInput
	}

	dest, ok, err := s.Path.SavePath(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("choosing save path: %w", err)
	}
	if !ok || strings.TrimSpace(dest) == "" {
		s.record(ctx, log, "", Result{}, ErrSaveCancelled)
		return Result{}, ErrSaveCancelled
	}

	// Progress starts after the prompts so the bar never draws underneath an
	// editor or a save-path question.
	s.Options.notify(StageReading, 1)
	res, err := Convert(text, dest, s.Options)
	s.record(ctx, log, dest, res, err)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(log, "converted: %s (%d rows in sheet %q)\n", dest, res.Rows, res.Sheet)
	if res.Stats.Sections == 0 {
		fmt.Fprintf(log, "warning: no \"### \" sections found; the sheet is empty\n")
	}
	if res.Replaced > 0 {
		fmt.Fprintf(log, "warning: %d cell(s) held characters a spreadsheet cannot store; they were written as U+FFFD\n", res.Replaced)
	}

	if s.Reveal != nil {
		if err := s.Reveal.Reveal(filepath.Dir(dest)); err != nil {
			fmt.Fprintf(log, "warning: could not open %s: %v\n", filepath.Dir(dest), err)
		}
	}
	return res, nil
}

// record hands the outcome to the Recorder. Recording failures are reported
// on log and never change the conversion result.
func (s Session) record(ctx context.Context, log io.Writer, dest string, res Result, convErr error) {
	if s.Recorder == nil {
		return
	}
	rec := types.ConversionRecord{
		Source:      s.Source,
		Destination: dest,
		Status:      types.ConversionDone,
		Stats:       res.Stats,
		CreatedAt:   time.Now().UTC(),
	}
	if convErr != nil {
		rec.Status = types.ConversionFailed
		rec.Error = convErr.Error()
		var we *WriteError
		if errors.As(convErr, &we) {
			rec.Destination = we.Path
		}
	}
	if err := s.Recorder.Record(ctx, rec); err != nil {
		fmt.Fprintf(log, "warning: could not record history: %v\n", err)
	}
}
