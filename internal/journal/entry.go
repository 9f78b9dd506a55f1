package journal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Runner launches the external editor on an entry file and blocks until it
// exits.
type Runner interface {
	Run(path string) error
}

// OpenOptions control how an entry is opened.
type OpenOptions struct {
	// Timestamp merges a date/time marker into the entry before the editor
	// is launched.
	Timestamp bool

	// ReadOnly skips entries that don't exist on disk instead of creating
	// them.
	ReadOnly bool

	// Now supplies the timestamp instant. Defaults to time.Now.
	Now func() time.Time

	// Stderr receives the skip diagnostic in read-only mode. Defaults to
	// os.Stderr.
	Stderr io.Writer
}

// EntryPath returns the path of the entry file for date: root/YYYY/YYYY-MM-DD.txt.
func EntryPath(root string, date time.Time) string {
	return filepath.Join(root, date.Format("2006"), date.Format(layoutISO)+entrySuffix)
}

// OpenEntry opens the entry for date in the editor, creating the year
// directory and merging a timestamp first as requested. In read-only mode a
// nonexistent entry is reported to Stderr and skipped with no side effects.
func OpenEntry(root string, date time.Time, editor Runner, opts OpenOptions) error {
	path := EntryPath(root, date)

	if opts.ReadOnly {
		if _, err := os.Stat(path); err != nil {
			stderr := opts.Stderr
			if stderr == nil {
				stderr = os.Stderr
			}
			fmt.Fprintf(stderr, "%s does not exist\n", path)
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating year directory: %w", err)
	}

	if opts.Timestamp {
		now := opts.Now
		if now == nil {
			now = time.Now
		}
		if err := MergeTimestamp(path, now()); err != nil {
			return err
		}
	}

	return editor.Run(path)
}
