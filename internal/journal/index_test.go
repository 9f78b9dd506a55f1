package journal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// mustDate parses an ISO date for test fixtures.
func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(layoutISO, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

// writeEntry creates an entry file for the given ISO date under root.
func writeEntry(t *testing.T, root, date string) {
	t.Helper()
	writeEntryContent(t, root, date, "entry\n")
}

func writeEntryContent(t *testing.T, root, date, content string) {
	t.Helper()
	dir := filepath.Join(root, date[:4])
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating year dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, date+".txt"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing entry: %v", err)
	}
}

func TestBuildIndexSorted(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"2024-03-01", "2023-12-31", "2024-01-15", "2022-06-01"} {
		writeEntry(t, root, d)
	}

	index, err := BuildIndex(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"2022-06-01", "2023-12-31", "2024-01-15", "2024-03-01"}
	if len(index) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(index))
	}
	for i, w := range want {
		if got := index[i].Format(layoutISO); got != w {
			t.Errorf("index[%d] = %s, want %s", i, got, w)
		}
	}
}

func TestBuildIndexIgnoresNonEntries(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, "2024-01-01")

	// Non-year directories and malformed filenames are silently skipped.
	if err := os.MkdirAll(filepath.Join(root, "notes"), 0o755); err != nil {
		t.Fatal(err)
	}
	junk := []string{"readme.txt", "2024-01-02.md", "2024-1-2.txt", "scratch"}
	for _, name := range junk {
		if err := os.WriteFile(filepath.Join(root, "2024", name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	index, err := BuildIndex(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(index) != 1 {
		t.Errorf("expected 1 date, got %d", len(index))
	}
}

func TestBuildIndexLenientYearPrefix(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, "2024-01-01")

	// A directory with a four-digit prefix counts as a year directory;
	// its matching entry files still land in the index.
	archive := filepath.Join(root, "2020-archive")
	if err := os.MkdirAll(archive, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(archive, "2020-05-05.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	index, err := BuildIndex(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(index) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(index))
	}
	if got := index[0].Format(layoutISO); got != "2020-05-05" {
		t.Errorf("index[0] = %s, want 2020-05-05", got)
	}
}

func TestBuildIndexMissingRoot(t *testing.T) {
	_, err := BuildIndex(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrRootNotFound) {
		t.Errorf("expected ErrRootNotFound, got %v", err)
	}
}

func TestBuildIndexEmptyRoot(t *testing.T) {
	index, err := BuildIndex(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(index) != 0 {
		t.Errorf("expected empty index, got %d dates", len(index))
	}
}

func TestLatest(t *testing.T) {
	root := t.TempDir()
	for _, d := range []string{"2023-01-01", "2024-06-15", "2024-02-02"} {
		writeEntry(t, root, d)
	}

	head, err := Latest(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := head.Format(layoutISO); got != "2024-06-15" {
		t.Errorf("Latest = %s, want 2024-06-15", got)
	}
}

func TestLatestSkipsEmptyYears(t *testing.T) {
	root := t.TempDir()
	writeEntry(t, root, "2023-11-30")
	if err := os.MkdirAll(filepath.Join(root, "2024"), 0o755); err != nil {
		t.Fatal(err)
	}

	head, err := Latest(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := head.Format(layoutISO); got != "2023-11-30" {
		t.Errorf("Latest = %s, want 2023-11-30", got)
	}
}

func TestLatestNoEntries(t *testing.T) {
	_, err := Latest(t.TempDir())
	if !errors.Is(err, ErrNoHead) {
		t.Errorf("expected ErrNoHead, got %v", err)
	}
}
