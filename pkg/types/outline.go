// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Document is the parsed form of a heading-delimited text. It is built once
// from the full input and not modified afterwards.
type Document struct {
	// Sections lists the top-level units in source order.
	Sections []Section `json:"sections" yaml:"sections"`
}

// Section is a top-level unit introduced by a "### " heading.
type Section struct {
	// Title is the first line of the section chunk, trimmed.
	Title string `json:"title" yaml:"title"`

	// SubSections lists the "#### " units of the section in source order.
	SubSections []SubSection `json:"subsections" yaml:"subsections"`
}

// SubSection is a second-level unit introduced by a "#### " heading.
type SubSection struct {
	// Title is the heading text with the marker removed.
	Title string `json:"title" yaml:"title"`

	// Blocks holds the content blocks in source order. A block may span
	// several lines and is never empty after trimming.
	Blocks []string `json:"blocks" yaml:"blocks"`
}

// Stats counts the nodes of a Document.
type Stats struct {
	Sections    int `json:"sections" yaml:"sections"`
	SubSections int `json:"subsections" yaml:"subsections"`
	Blocks      int `json:"blocks" yaml:"blocks"`
}

// Rows returns the number of spreadsheet rows the document produces: one per
// section, subsection, and content block.
func (s Stats) Rows() int {
	return s.Sections + s.SubSections + s.Blocks
}

// Stats walks the document and returns its node counts.
func (d Document) Stats() Stats {
	var s Stats
	s.Sections = len(d.Sections)
	for _, sec := range d.Sections {
		s.SubSections += len(sec.SubSections)
		for _, sub := range sec.SubSections {
			s.Blocks += len(sub.Blocks)
		}
	}
	return s
}

// IsEmpty reports whether the document has no sections.
func (d Document) IsEmpty() bool {
	return len(d.Sections) == 0
}
