// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/text2xlsx/pkg/types"
)

// setupText writes a text file into a temporary input directory and returns
// its path and the temp dir.
func setupText(t *testing.T, name, content string) (string, string) {
	t.Helper()
	tmpDir := t.TempDir()
	inDir := filepath.Join(tmpDir, "in")
	if err := os.MkdirAll(inDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(inDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path, tmpDir
}

func TestOutputPath(t *testing.T) {
	got := OutputPath(filepath.Join("notes", "bearings.txt"), "out")
	want := filepath.Join("out", "bearings.xlsx")
	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}

func TestConvertFile(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		preCreate  bool
		overwrite  bool
		wantStatus types.ConversionStatus
		wantLog    string
	}{
		{
			name:       "successful conversion",
			content:    sampleText,
			wantStatus: types.ConversionDone,
			wantLog:    "converted:",
		},
		{
			name:       "skip existing output",
			content:    sampleText,
			preCreate:  true,
			wantStatus: types.ConversionSkipped,
			wantLog:    "skipped:",
		},
		{
			name:       "overwrite existing output",
			content:    sampleText,
			preCreate:  true,
			overwrite:  true,
			wantStatus: types.ConversionDone,
			wantLog:    "converted:",
		},
		{
			name:       "unstorable characters are reported",
			content:    "### S\n#### Sub\n- a\x01b",
			wantStatus: types.ConversionDone,
			wantLog:    "written as U+FFFD",
		},
		{
			name:       "overlong block fails",
			content:    "### S\n#### Sub\n- " + strings.Repeat("x", 40000),
			wantStatus: types.ConversionFailed,
			wantLog:    "exceeds the cell limit",
		},
		{
			name:       "empty file fails",
			content:    "  \n",
			wantStatus: types.ConversionFailed,
			wantLog:    "no text provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, tmpDir := setupText(t, "doc.txt", tt.content)
			outDir := filepath.Join(tmpDir, "out")

			if tt.preCreate {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(filepath.Join(outDir, "doc.xlsx"), []byte("existing"), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			rec := &memRecorder{}
			cfg := BatchConfig{OutDir: outDir, Overwrite: tt.overwrite, Recorder: rec}
			var log bytes.Buffer

			status := ConvertFile(context.Background(), src, cfg, &log)

			if status != tt.wantStatus {
				t.Errorf("status = %q, want %q", status, tt.wantStatus)
			}
			if !strings.Contains(log.String(), tt.wantLog) {
				t.Errorf("log output %q does not contain %q", log.String(), tt.wantLog)
			}
			if tt.wantStatus == types.ConversionSkipped {
				if len(rec.records) != 0 {
					t.Errorf("skipped files should not be recorded, got %d records", len(rec.records))
				}
			} else if len(rec.records) != 1 || rec.records[0].Status != tt.wantStatus {
				t.Errorf("records = %+v, want one %q record", rec.records, tt.wantStatus)
			}
		})
	}
}

func TestConvertBatch(t *testing.T) {
	tmpDir := t.TempDir()
	inDir := filepath.Join(tmpDir, "in")
	outDir := filepath.Join(tmpDir, "out")
	for _, dir := range []string{inDir, outDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	// a converts, b is pre-existing, c is empty and fails.
	files := map[string]string{
		"a.txt": sampleText,
		"b.txt": sampleText,
		"c.txt": "",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(inDir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(outDir, "b.xlsx"), []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	paths := []string{
		filepath.Join(inDir, "a.txt"),
		filepath.Join(inDir, "b.txt"),
		filepath.Join(inDir, "c.txt"),
	}

	var log bytes.Buffer
	result := ConvertBatch(context.Background(), paths, BatchConfig{OutDir: outDir}, &log)

	if result.Converted != 1 {
		t.Errorf("converted = %d, want 1", result.Converted)
	}
	if result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", result.Skipped)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}
	if result.Total() != 3 {
		t.Errorf("total = %d, want 3", result.Total())
	}
	if !strings.Contains(log.String(), "Batch summary:") {
		t.Error("batch output should contain summary line")
	}
	if _, err := os.Stat(filepath.Join(outDir, "a.xlsx")); err != nil {
		t.Errorf("expected output file for a.txt: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "c.xlsx")); !os.IsNotExist(err) {
		t.Error("empty input should not produce an output file")
	}
}

func TestConvertBatch_CreatesOutDir(t *testing.T) {
	src, tmpDir := setupText(t, "only.txt", sampleText)
	outDir := filepath.Join(tmpDir, "nested", "out")

	var log bytes.Buffer
	result := ConvertBatch(context.Background(), []string{src}, BatchConfig{OutDir: outDir}, &log)

	if result.Converted != 1 {
		t.Fatalf("converted = %d, want 1 (log: %s)", result.Converted, log.String())
	}
	if _, err := os.Stat(filepath.Join(outDir, "only.xlsx")); err != nil {
		t.Errorf("expected output in created directory: %v", err)
	}
}

func TestConvertBatch_StopsOnCancelledContext(t *testing.T) {
	src, tmpDir := setupText(t, "doc.txt", sampleText)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var log bytes.Buffer
	result := ConvertBatch(ctx, []string{src}, BatchConfig{OutDir: filepath.Join(tmpDir, "out")}, &log)
	if result.Total() != 0 {
		t.Errorf("total = %d, want 0 after cancellation", result.Total())
	}
}
