// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"strings"

	"github.com/pdiddy/text2xlsx/pkg/types"
)

// BuildSection parses one section chunk. The first line is the title. Each
// line starting with "#### " opens a subsection chunk that runs, marker line
// included, until the next such line or the end of the chunk. Lines before
// the first subsection marker are not part of any subsection.
func BuildSection(chunk string) types.Section {
	title, lines := splitTitle(chunk)
	sec := types.Section{Title: title, SubSections: []types.SubSection{}}

	var current []string
	open := false
	finish := func() {
		if open {
			sec.SubSections = append(sec.SubSections,
				BuildSubSection(strings.TrimSpace(strings.Join(current, "\n"))))
		}
	}

	for _, line := range lines {
		if strings.HasPrefix(line, subSectionMarker) {
			finish()
			current = current[:0]
			open = true
		}
		if open {
			current = append(current, line)
		}
	}
	finish()

	return sec
}
