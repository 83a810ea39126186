// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/text2xlsx/internal/convert"
)

const barWidth = 50

// Bar draws a single-line progress bar, redrawing it in place on each
// notification and ending the line on the last step. A failed stage leaves
// the bar as drawn and only ends the line, so a following error message
// starts on its own line.
type Bar struct {
	W io.Writer
}

// Notify implements convert.Progress.
func (b Bar) Notify(stage string, step, total int) {
	if total <= 0 {
		return
	}
	if stage == convert.StageFailed {
		fmt.Fprintln(b.W)
		return
	}
	if step > total {
		step = total
	}
	percent := step * 100 / total
	filled := percent * barWidth / 100
	fmt.Fprintf(b.W, "\r[%s%s] %3d%% %-8s",
		strings.Repeat("#", filled), strings.Repeat(".", barWidth-filled), percent, stage)
	if step == total {
		fmt.Fprintln(b.W)
	}
}
