// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the input text is empty or whitespace
	// only. Nothing is parsed or written.
	ErrEmptyInput = errors.New("no text provided")

	// ErrSaveCancelled is returned when no destination path was chosen.
	// Nothing is written.
	ErrSaveCancelled = errors.New("save operation cancelled")
)

// WriteError reports a failure to write the workbook to Path. A file at Path
// left over from the failed attempt must not be trusted.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing spreadsheet %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
