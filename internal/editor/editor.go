// Package editor selects and launches the external text editor.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrNoEditor is returned when no usable editor can be found.
var ErrNoEditor = errors.New("no usable editor found")

// Command launches a named editor synchronously, wired to the terminal.
type Command struct {
	Name string
}

// Run opens path in the editor and blocks until the editor exits.
func (c Command) Run(path string) error {
	cmd := exec.Command(c.Name, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", c.Name, err)
	}
	return nil
}

// Available reports whether name resolves to an executable on PATH.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Choose picks the editor to use: an explicit override wins, then the
// configured editor if available, then sensible-editor as a fallback.
func Choose(override, configured string) (string, error) {
	if override != "" {
		return override, nil
	}
	if Available(configured) {
		return configured, nil
	}
	if Available("sensible-editor") {
		return "sensible-editor", nil
	}
	return "", fmt.Errorf("%w: %s not available", ErrNoEditor, configured)
}
