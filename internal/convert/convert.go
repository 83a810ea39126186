// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns heading-delimited text into an xlsx outline. Convert
// is the single entry point of the core; Run wires it to the collaborators
// that supply the text and the save path, and ConvertBatch processes a list
// of text files one after another.
package convert

import (
	"strings"

	"github.com/pdiddy/text2xlsx/internal/outline"
	"github.com/pdiddy/text2xlsx/internal/sheet"
	"github.com/pdiddy/text2xlsx/pkg/types"
)

// Progress stages reported through Progress.Notify.
const (
	StageReading = "reading"
	StageParsing = "parsing"
	StageWriting = "writing"
	StageDone    = "done"

	// StageFailed ends a conversion that stopped early. It is reported with
	// step equal to total.
	StageFailed = "failed"

	stageCount = 4
)

// Progress receives stage notifications during a conversion. step runs from
// 1 to total.
type Progress interface {
	Notify(stage string, step, total int)
}

// Options configures a conversion.
type Options struct {
	// Sheet holds the worksheet name and title font sizes.
	Sheet types.SheetConfig

	// Progress, when set, is told about the parsing and writing stages.
	Progress Progress
}

func (o Options) notify(stage string, step int) {
	if o.Progress != nil {
		o.Progress.Notify(stage, step, stageCount)
	}
}

// Result describes a completed conversion.
type Result struct {
	Destination string
	Sheet       string
	Stats       types.Stats
	Rows        int

	// Replaced counts cells whose text held characters a workbook cannot
	// store; they were written as U+FFFD.
	Replaced int
}

// Convert parses text and writes the resulting outline to dest, replacing an
// existing file. Blank text returns ErrEmptyInput before anything is parsed;
// a failed save returns a *WriteError naming dest.
func Convert(text, dest string, opts Options) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrEmptyInput
	}

	opts.notify(StageParsing, 2)
	doc := outline.Parse(text)

	opts.notify(StageWriting, 3)
	rep, err := sheet.Emit(doc, dest, opts.Sheet)
	if err != nil {
		opts.notify(StageFailed, stageCount)
		return Result{}, &WriteError{Path: dest, Err: err}
	}

	opts.notify(StageDone, stageCount)
	return Result{
		Destination: dest,
		Sheet:       rep.Sheet,
		Stats:       doc.Stats(),
		Rows:        rep.Rows,
		Replaced:    rep.Replaced,
	}, nil
}
