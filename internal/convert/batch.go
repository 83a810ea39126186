// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/text2xlsx/pkg/types"
)

// BatchConfig configures a batch run.
type BatchConfig struct {
	// OutDir receives one <base>.xlsx per input file.
	OutDir string

	// Overwrite replaces existing outputs instead of skipping them.
	Overwrite bool

	Options  Options
	Recorder Recorder
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// OutputPath returns the spreadsheet path for the text file src in outDir.
func OutputPath(src, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(outDir, base+".xlsx")
}

// ConvertFile converts the text file at src into cfg.OutDir and returns the
// status. An existing output is skipped unless cfg.Overwrite is set.
func ConvertFile(ctx context.Context, src string, cfg BatchConfig, w io.Writer) types.ConversionStatus {
	dest := OutputPath(src, cfg.OutDir)
	base := filepath.Base(dest)

	if !cfg.Overwrite {
		if _, err := os.Stat(dest); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
			return types.ConversionSkipped
		}
	}

	status, res, err := convertFile(src, dest, cfg)
	switch {
	case err != nil:
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
	case res.Replaced > 0:
		fmt.Fprintf(w, "converted: %s (%d cell(s) with unstorable characters written as U+FFFD)\n", base, res.Replaced)
	default:
		fmt.Fprintf(w, "converted: %s\n", base)
	}

	if cfg.Recorder != nil {
		rec := types.ConversionRecord{
			Source:      src,
			Destination: dest,
			Status:      status,
			Stats:       res.Stats,
			CreatedAt:   time.Now().UTC(),
		}
		if err != nil {
			rec.Error = err.Error()
		}
		if recErr := cfg.Recorder.Record(ctx, rec); recErr != nil {
			fmt.Fprintf(w, "warning: could not record history for %s: %v\n", base, recErr)
		}
	}
	return status
}

func convertFile(src, dest string, cfg BatchConfig) (types.ConversionStatus, Result, error) {
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return types.ConversionFailed, Result{}, err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return types.ConversionFailed, Result{}, err
	}
	res, err := Convert(string(data), dest, cfg.Options)
	if err != nil {
		return types.ConversionFailed, Result{}, err
	}
	return types.ConversionDone, res, nil
}

// ConvertBatch processes the text files one at a time, printing per-file
// status to w and returning a summary. A cancelled context stops the run
// before the next file.
func ConvertBatch(ctx context.Context, paths []string, cfg BatchConfig, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range paths {
		if ctx.Err() != nil {
			break
		}
		switch ConvertFile(ctx, p, cfg, w) {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionSkipped:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}
