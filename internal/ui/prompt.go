package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxPromptAttempts bounds how often an unparseable answer is re-asked.
const maxPromptAttempts = 3

// promptYesNo asks a yes/no question on out and reads the answer from in.
// Unrecognized input is re-prompted a bounded number of times; end of input
// counts as "no".
func promptYesNo(in io.Reader, out io.Writer, question string) (bool, error) {
	scanner := bufio.NewScanner(in)

	for attempt := 0; attempt < maxPromptAttempts; attempt++ {
		fmt.Fprintf(out, "%s [y/n]: ", question)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return false, fmt.Errorf("reading answer: %w", err)
			}
			return false, nil
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		fmt.Fprintln(out, "Please answer y or n")
	}

	return false, errors.New("no valid answer given")
}
