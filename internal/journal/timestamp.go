package journal

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"
)

const layoutClock = "15:04"

// MergeTimestamp records instant in the entry file at path.
//
// A fresh file is created holding the date line then the time line. For an
// existing file the time line is appended on every call; the date line is
// added only if the literal date string does not already occur anywhere in
// the text, and a separating newline only if the text does not already end
// with a blank line. After appending, the file always ends with exactly one
// blank line.
//
// The instant must be supplied by the caller; there is no implicit clock.
func MergeTimestamp(path string, instant time.Time) error {
	dateLine := instant.Format(layoutISO)
	timeLine := instant.Format(layoutClock)

	text, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading entry: %w", err)
		}
		content := dateLine + "\n" + timeLine + "\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("creating entry: %w", err)
		}
		return nil
	}

	var stamp strings.Builder
	if !bytes.HasSuffix(text, []byte("\n\n")) {
		stamp.WriteByte('\n')
	}
	if !bytes.Contains(text, []byte(dateLine)) {
		stamp.WriteString(dateLine + "\n")
	}
	stamp.WriteString(timeLine + "\n\n")

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening entry: %w", err)
	}
	if _, err := f.WriteString(stamp.String()); err != nil {
		f.Close()
		return fmt.Errorf("appending timestamp: %w", err)
	}
	return f.Close()
}
