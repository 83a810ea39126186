// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates the outcome of converting one document.
type ConversionStatus string

const (
	ConversionDone    ConversionStatus = "converted"
	ConversionSkipped ConversionStatus = "skipped"
	ConversionFailed  ConversionStatus = "failed"
)

// ConversionRecord describes one conversion attempt as stored in the history
// journal.
type ConversionRecord struct {
	// ID is a random UUID assigned when the record is created.
	ID string `json:"id" yaml:"id"`

	// Source names the input: a file path, "-" for stdin, or "tui".
	Source string `json:"source" yaml:"source"`

	// Destination is the spreadsheet path that was written or attempted.
	Destination string `json:"destination" yaml:"destination"`

	// Status is the outcome of the attempt.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Stats holds node counts of the parsed document (zero on early failures).
	Stats Stats `json:"stats" yaml:"stats"`

	// Error is the failure message, empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// CreatedAt is when the attempt finished.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
