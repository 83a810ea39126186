// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline parses heading-delimited plain text into a three-level
// document tree: sections ("### "), subsections ("#### "), and content
// blocks split at list-marker lines ("- ", "1. ").
//
// Parsing is pure and total. Any input yields a Document, possibly with no
// sections; text that does not belong to a recognised unit is dropped.
package outline

import (
	"strings"

	"github.com/pdiddy/text2xlsx/pkg/types"
)

const (
	sectionMarker    = "### "
	subSectionMarker = "#### "
	orderedMarker    = "1. "
	unorderedMarker  = "- "
)

// Parse builds a Document from the full input text.
func Parse(text string) types.Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	chunks := SplitSections(text)
	doc := types.Document{Sections: make([]types.Section, 0, len(chunks))}
	for _, chunk := range chunks {
		doc.Sections = append(doc.Sections, BuildSection(chunk))
	}
	return doc
}

// splitTitle returns the first line of chunk, trimmed, and the remaining
// lines. A chunk without a newline has no body lines.
func splitTitle(chunk string) (string, []string) {
	title, body, found := strings.Cut(chunk, "\n")
	if !found {
		return strings.TrimSpace(title), nil
	}
	return strings.TrimSpace(title), strings.Split(body, "\n")
}
