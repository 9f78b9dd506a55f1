// Package search shells out to grep for journal content search.
package search

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Grep runs a recursive, binary-skipping grep for pattern over root, passing
// any extra options straight through to grep. Output goes to the terminal.
// A pattern that matches nothing is not an error.
func Grep(pattern, root string, extraOpts []string) error {
	args := append([]string{"-r", "-I"}, extraOpts...)
	args = append(args, pattern, root)

	cmd := exec.Command("grep", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return nil // no matches
	}
	if err != nil {
		return fmt.Errorf("running grep: %w", err)
	}
	return nil
}
