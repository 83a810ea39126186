// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"fmt"

	"github.com/pdiddy/text2xlsx/pkg/types"
)

// Write appends the rows for doc in depth-first order: section title, then
// for each subsection its title followed by its content blocks.
func Write(w *Writer, doc types.Document) error {
	for _, sec := range doc.Sections {
		if err := w.AppendRow(sec.Title, RowSection); err != nil {
			return err
		}
		for _, sub := range sec.SubSections {
			if err := w.AppendRow(sub.Title, RowSubSection); err != nil {
				return err
			}
			for _, block := range sub.Blocks {
				if err := w.AppendRow(block, RowContent); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Report describes a saved workbook.
type Report struct {
	Sheet string
	Rows  int

	// Replaced counts rows in which characters XML cannot store were
	// written as U+FFFD.
	Replaced int
}

// Emit renders doc into a new workbook and saves it to dest, replacing any
// existing file. Nothing is written to dest when a row is rejected.
func Emit(doc types.Document, dest string, cfg types.SheetConfig) (Report, error) {
	w, err := NewWriter(cfg)
	if err != nil {
		return Report{}, err
	}
	defer w.Close()

	if err := Write(w, doc); err != nil {
		return Report{}, fmt.Errorf("rendering rows: %w", err)
	}
	if err := w.Save(dest); err != nil {
		return Report{}, err
	}
	return Report{Sheet: w.SheetName(), Rows: w.Rows(), Replaced: w.Replaced()}, nil
}
