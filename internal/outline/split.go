// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import "strings"

// SplitSections splits text on the "### " marker and returns one trimmed
// chunk per section in source order. Text before the first marker is a
// preamble and is discarded. An occurrence preceded by '#' belongs to a
// deeper heading such as "#### " and does not split.
func SplitSections(text string) []string {
	var chunks []string
	start := -1
	for i := 0; i < len(text); {
		j := strings.Index(text[i:], sectionMarker)
		if j < 0 {
			break
		}
		pos := i + j
		if pos > 0 && text[pos-1] == '#' {
			i = pos + 1
			continue
		}
		if start >= 0 {
			chunks = append(chunks, strings.TrimSpace(text[start:pos]))
		}
		start = pos + len(sectionMarker)
		i = start
	}
	if start >= 0 {
		chunks = append(chunks, strings.TrimSpace(text[start:]))
	}
	return chunks
}
