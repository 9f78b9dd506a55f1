// Package journal implements the date-addressed journal: an index over the
// entry files that exist on disk, resolution of date expressions against it,
// and timestamped entry opening.
//
// A journal lives under a single root directory containing one subdirectory
// per year, each holding entry files named YYYY-MM-DD.txt. The files on disk
// are the only record of which entries exist; the index is rebuilt by a
// directory scan whenever a resolution needs it.
package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

const (
	layoutISO   = "2006-01-02"
	entrySuffix = ".txt"
)

var (
	// Year directories are matched on a four-digit prefix, so a directory
	// like "2020-archive" is scanned as a year and simply contributes no
	// entries. Kept for compatibility with existing journal trees.
	yearDirPattern = regexp.MustCompile(`^\d{4}`)

	entryFilePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\.txt$`)
)

// BuildIndex scans the journal root and returns the dates of all existing
// entries in ascending order. Dates are normalized to UTC midnight.
//
// Returns ErrRootNotFound if the root does not exist or is not a directory.
func BuildIndex(root string) ([]time.Time, error) {
	years, err := yearDirs(root)
	if err != nil {
		return nil, err
	}

	var dates []time.Time
	for _, year := range years {
		yearDates, err := entryDates(root, year)
		if err != nil {
			return nil, err
		}
		dates = append(dates, yearDates...)
	}
	return dates, nil
}

// Latest returns the date of the chronologically last existing entry,
// walking year directories newest-first so only the tail of the journal is
// scanned. Returns ErrNoHead if no entry exists.
func Latest(root string) (time.Time, error) {
	years, err := yearDirs(root)
	if err != nil {
		return time.Time{}, err
	}

	for i := len(years) - 1; i >= 0; i-- {
		dates, err := entryDates(root, years[i])
		if err != nil {
			return time.Time{}, err
		}
		if len(dates) > 0 {
			return dates[len(dates)-1], nil
		}
	}
	return time.Time{}, ErrNoHead
}

// yearDirs returns the names of year directories under root, ascending.
func yearDirs(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrRootNotFound)
	}

	children, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading journal root: %w", err)
	}

	var years []string
	for _, child := range children {
		if child.IsDir() && yearDirPattern.MatchString(child.Name()) {
			years = append(years, child.Name())
		}
	}
	sort.Strings(years)
	return years, nil
}

// entryDates returns the entry dates found in one year directory, ascending.
// Names that don't match the entry-file pattern, or that match but don't
// parse as a real calendar date, are skipped.
func entryDates(root, year string) ([]time.Time, error) {
	children, err := os.ReadDir(filepath.Join(root, year))
	if err != nil {
		return nil, fmt.Errorf("reading year directory %s: %w", year, err)
	}

	var dates []time.Time
	for _, child := range children {
		if child.IsDir() || !entryFilePattern.MatchString(child.Name()) {
			continue
		}
		date, err := time.Parse(layoutISO, strings.TrimSuffix(child.Name(), entrySuffix))
		if err != nil {
			continue
		}
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}
