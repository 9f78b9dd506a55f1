package ui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwiens91/jrnl/internal/dateutil"
	"github.com/mwiens91/jrnl/internal/editor"
	"github.com/mwiens91/jrnl/internal/journal"
)

// open is the root command: resolve the requested dates (or default to
// today) and hand each entry to the editor in turn.
func (a *App) open(cmd *cobra.Command, args []string) error {
	if err := a.ensureJournalRoot(cmd); err != nil {
		return err
	}

	editorName, err := editor.Choose(a.editorFlag, a.config.Editor)
	if err != nil {
		return err
	}

	now := a.now()
	lateNight := a.config.LateNightOffset(now)

	var dates []time.Time
	if len(args) > 0 {
		resolver := &journal.Resolver{
			Root:      a.config.JournalPath,
			LateNight: lateNight,
			Now:       a.now,
		}
		for _, res := range resolver.ResolveAll(args) {
			if res.Err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), formatError(res.Err.Error()))
				continue
			}
			dates = append(dates, res.Date)
		}
		if len(dates) == 0 {
			return errors.New("no valid dates given")
		}
	} else {
		dates = []time.Time{dateutil.DateOnly(now).Add(lateNight)}
	}

	doTimestamp := a.timestamp || (a.config.WriteTimestamps && !a.noTimestamp)
	readOnly := len(args) > 0 && !a.config.CreateNewEntries

	for _, date := range dates {
		err := journal.OpenEntry(a.config.JournalPath, date, editor.Command{Name: editorName}, journal.OpenOptions{
			Timestamp: doTimestamp,
			ReadOnly:  readOnly,
			Now:       a.now,
			Stderr:    cmd.ErrOrStderr(),
		})
		if err != nil {
			// An IO failure kills this entry only; the rest of the
			// batch still gets opened.
			fmt.Fprintln(cmd.ErrOrStderr(), formatError(err.Error()))
		}
	}
	return nil
}

// ensureJournalRoot makes sure the journal root directory exists, offering
// to create it when running interactively.
func (a *App) ensureJournalRoot(cmd *cobra.Command) error {
	path := a.config.JournalPath

	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return nil
	}
	if err == nil {
		return fmt.Errorf("%s exists but is not a directory", path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("checking journal root: %w", err)
	}

	if !stdinIsTerminal() {
		return fmt.Errorf("%s: %w", path, journal.ErrRootNotFound)
	}

	create, err := promptYesNo(os.Stdin, cmd.OutOrStdout(), fmt.Sprintf("Create %q?", path))
	if err != nil {
		return err
	}
	if !create {
		return fmt.Errorf("%s: %w", path, journal.ErrRootNotFound)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("creating journal root: %w", err)
	}
	return nil
}
