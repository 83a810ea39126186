// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reveal opens a directory in the platform file browser.
package reveal

import (
	"fmt"
	"os/exec"
	"runtime"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Start(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Start launches the command without waiting; file browsers keep running
// after the conversion exits.
func (o *osExecutor) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// Opener implements convert.Revealer for one operating system.
type Opener struct {
	bin  string
	exec executor
}

// openers maps GOOS to the command that opens a directory.
var openers = map[string]string{
	"windows": "explorer",
	"darwin":  "open",
	"linux":   "xdg-open",
	"freebsd": "xdg-open",
	"openbsd": "xdg-open",
}

var defaultExec = &osExecutor{}

// New returns an Opener for the running operating system.
func New() (*Opener, error) {
	return newOpener(runtime.GOOS, defaultExec)
}

func newOpener(goos string, exec executor) (*Opener, error) {
	bin, ok := openers[goos]
	if !ok {
		return nil, fmt.Errorf("opening directories is not supported on %s", goos)
	}
	return &Opener{bin: bin, exec: exec}, nil
}

// Reveal opens dir in the file browser.
func (o *Opener) Reveal(dir string) error {
	if _, err := o.exec.LookPath(o.bin); err != nil {
		return fmt.Errorf("%s not found: %w", o.bin, err)
	}
	if err := o.exec.Start(o.bin, dir); err != nil {
		return fmt.Errorf("running %s %s: %w", o.bin, dir, err)
	}
	return nil
}
