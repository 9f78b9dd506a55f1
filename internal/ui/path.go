package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/mwiens91/jrnl/internal/dateutil"
	"github.com/mwiens91/jrnl/internal/journal"
)

// pathCmd prints the path of an entry file without opening it, optionally
// copying it to the clipboard. Useful for piping into other tools.
func (a *App) pathCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "path [date-expression]",
		Short: "Print the path of an entry file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			lateNight := a.config.LateNightOffset(now)

			date := dateutil.DateOnly(now).Add(lateNight)
			if len(args) > 0 {
				resolver := &journal.Resolver{
					Root:      a.config.JournalPath,
					LateNight: lateNight,
					Now:       a.now,
				}
				var err error
				date, err = resolver.Resolve(args[0])
				if err != nil {
					return err
				}
			}

			path := journal.EntryPath(a.config.JournalPath, date)
			if copyToClipboard {
				if err := clipboard.WriteAll(path); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "also copy the path to the clipboard")
	return cmd
}
