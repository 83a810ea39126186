// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"strings"

	"github.com/pdiddy/text2xlsx/pkg/types"
)

// BuildSubSection parses one subsection chunk. The first line, with any
// leading "#### " marker removed, is the title; the remaining lines are
// split into content blocks by SplitBlocks.
func BuildSubSection(chunk string) types.SubSection {
	title, lines := splitTitle(chunk)
	title = strings.TrimSpace(strings.TrimPrefix(title, strings.TrimSpace(subSectionMarker)))
	return types.SubSection{Title: title, Blocks: SplitBlocks(lines)}
}

// SplitBlocks groups lines into content blocks. A list-marker line closes the
// block accumulated so far and starts a new one containing itself, so lines
// before the first marker form one block and each marker line absorbs the
// non-marker lines that follow it. Blocks are trimmed as a whole and empty
// blocks are never emitted.
func SplitBlocks(lines []string) []string {
	r := blockReducer{blocks: []string{}}
	for _, line := range lines {
		r.step(line)
	}
	r.flush()
	return r.blocks
}

// blockReducer is the accumulate/flush state machine behind SplitBlocks.
type blockReducer struct {
	blocks []string
	buf    []string
}

func (r *blockReducer) step(line string) {
	if isListMarker(line) {
		r.flush()
	}
	r.buf = append(r.buf, line)
}

func (r *blockReducer) flush() {
	block := strings.TrimSpace(strings.Join(r.buf, "\n"))
	if block != "" {
		r.blocks = append(r.blocks, block)
	}
	r.buf = r.buf[:0]
}

func isListMarker(line string) bool {
	return strings.HasPrefix(line, orderedMarker) || strings.HasPrefix(line, unorderedMarker)
}
