// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheet renders a parsed outline into a single-worksheet xlsx
// workbook. Rows are appended depth-first, one per node, with bold section
// and subsection titles and unstyled content cells.
package sheet

import (
	"fmt"
	"errors"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/text2xlsx/pkg/types"
)

// defaultSheet is the worksheet excelize creates in a new workbook.
const defaultSheet = "Sheet1"

// RowKind selects the formatting of an appended row.
type RowKind int

const (
	RowContent RowKind = iota
	RowSection
	RowSubSection
)

// ErrCellTooLong is returned for text longer than a spreadsheet cell holds.
var ErrCellTooLong = errors.New("text exceeds the cell limit")

// Writer appends single-cell rows to one worksheet and saves the workbook.
type Writer struct {
	f        *excelize.File
	sheet    string
	rows     int
	replaced int
	style    map[RowKind]int
}

// NewWriter creates an empty workbook whose only worksheet is named after
// cfg.Name, with the two title styles registered.
func NewWriter(cfg types.SheetConfig) (*Writer, error) {
	cfg = cfg.WithDefaults()

	f := excelize.NewFile()
	if err := f.SetSheetName(defaultSheet, cfg.Name); err != nil {
		f.Close()
		return nil, fmt.Errorf("naming worksheet %q: %w", cfg.Name, err)
	}

	w := &Writer{f: f, sheet: cfg.Name, style: make(map[RowKind]int)}
	titles := []struct {
		kind RowKind
		size float64
	}{
		{RowSection, cfg.SectionFontSize},
		{RowSubSection, cfg.SubSectionFontSize},
	}
	for _, t := range titles {
		id, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: t.size}})
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("creating title style: %w", err)
		}
		w.style[t.kind] = id
	}
	return w, nil
}

// SheetName returns the worksheet name.
func (w *Writer) SheetName() string { return w.sheet }

// Rows returns the number of rows appended so far.
func (w *Writer) Rows() int { return w.rows }

// Replaced returns the number of rows whose text held characters XML cannot
// store. The workbook carries U+FFFD in their place.
func (w *Writer) Replaced() int { return w.replaced }

// AppendRow writes text into column A of the next row and applies the style
// for kind. Content rows keep the default style. Text longer than
// excelize.TotalCellChars is rejected with ErrCellTooLong rather than cut.
func (w *Writer) AppendRow(text string, kind RowKind) error {
	cell, err := excelize.CoordinatesToCellName(1, w.rows+1)
	if err != nil {
		return err
	}
	if n := utf8.RuneCountInString(text); n > excelize.TotalCellChars {
		return fmt.Errorf("cell %s: %w (%d characters, limit %d)", cell, ErrCellTooLong, n, excelize.TotalCellChars)
	}
	if hasInvalidXMLChar(text) {
		w.replaced++
	}
	if err := w.f.SetCellStr(w.sheet, cell, text); err != nil {
		return fmt.Errorf("writing cell %s: %w", cell, err)
	}
	if id, ok := w.style[kind]; ok {
		if err := w.f.SetCellStyle(w.sheet, cell, cell, id); err != nil {
			return fmt.Errorf("styling cell %s: %w", cell, err)
		}
	}
	w.rows++
	return nil
}

// Save writes the workbook to path. The data goes to a temporary file in the
// same directory which is then renamed over path, so a failed save leaves
// neither a partial file nor a damaged previous version.
func (w *Writer) Save(path string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = w.f.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding workbook: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// hasInvalidXMLChar reports whether s holds a rune outside the XML 1.0 Char
// production, such as most C0 control characters.
func hasInvalidXMLChar(s string) bool {
	for _, r := range s {
		switch {
		case r == '\t', r == '\n', r == '\r':
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= utf8.MaxRune:
		default:
			return true
		}
	}
	return false
}

// Close releases the workbook.
func (w *Writer) Close() error {
	return w.f.Close()
}
