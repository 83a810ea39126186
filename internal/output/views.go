// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pdiddy/text2xlsx/pkg/types"
)

// Outline prints a document as an indented tree in text mode.
type Outline types.Document

// WriteText implements Texter.
func (o Outline) WriteText(w io.Writer) error {
	for _, sec := range o.Sections {
		fmt.Fprintln(w, sec.Title)
		for _, sub := range sec.SubSections {
			fmt.Fprintf(w, "  %s\n", sub.Title)
			for _, block := range sub.Blocks {
				fmt.Fprintf(w, "    %s\n", strings.ReplaceAll(block, "\n", "\n    "))
			}
		}
	}
	return nil
}

// Stats prints document counts in text mode.
type Stats types.Stats

// WriteText implements Texter.
func (s Stats) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "sections: %d\nsubsections: %d\nblocks: %d\nrows: %d\n",
		s.Sections, s.SubSections, s.Blocks, types.Stats(s).Rows())
	return err
}

// History prints conversion records as a table in text mode.
type History []types.ConversionRecord

// WriteText implements Texter.
func (h History) WriteText(w io.Writer) error {
	if len(h) == 0 {
		_, err := fmt.Fprintln(w, "No conversions recorded.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tSTATUS\tROWS\tSOURCE\tDESTINATION\tERROR")
	for _, r := range h {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			r.CreatedAt.Local().Format(time.DateTime), r.Status, r.Stats.Rows(),
			r.Source, r.Destination, r.Error)
	}
	return tw.Flush()
}
