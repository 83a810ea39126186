//go:build mage

// Package main contains Mage build targets for text2xlsx developer tooling.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "text2xlsx"
	cmdPkg  = "./cmd/text2xlsx"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests for every package.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet over the module.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

const sampleOutline = `### Bearings
Preamble lines before the first subsection are dropped.
#### Passive
1. Permanent magnet rings
- Repulsive axial stack
#### Active
- Electromagnets with position feedback
### Controls
#### Sensors
- Eddy current probes
`

// Sample builds the CLI and converts a small outline into bin/sample.xlsx.
func Sample() error {
	mg.Deps(Build)
	src := filepath.Join(binDir, "sample.txt")
	if err := os.WriteFile(src, []byte(sampleOutline), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", src, err)
	}
	bin := filepath.Join(binDir, binName)
	if err := sh.RunV(bin, "outline", src); err != nil {
		return err
	}
	return sh.RunV(bin, "convert", src, "-o", filepath.Join(binDir, "sample.xlsx"))
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// Stats prints project metrics: Go production/test line counts and the
// documentation word count.
func Stats() error {
	var prod, tests, words int
	err := walkProject(".", func(path string, data []byte) {
		switch {
		case strings.HasSuffix(path, "_test.go"):
			tests += nonBlankLines(data)
		case filepath.Ext(path) == ".go":
			prod += nonBlankLines(data)
		case isDoc(path):
			words += len(bytes.Fields(data))
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", tests)
	fmt.Printf("Words (documentation):           %d\n", words)
	return nil
}

// walkProject calls visit with the contents of every regular file under
// root, skipping bin/ and directories whose name starts with "." or "_".
func walkProject(root string, visit func(path string, data []byte)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (path == binDir || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" && !isDoc(path) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		visit(path, data)
		return nil
	})
}

func isDoc(path string) bool {
	switch filepath.Ext(path) {
	case ".md", ".yaml", ".yml":
		return true
	}
	return false
}

func nonBlankLines(data []byte) int {
	n := 0
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n
}
