// Package ui implements the jrnl command-line interface.
package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwiens91/jrnl/internal/config"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	now    func() time.Time

	editorFlag  string
	timestamp   bool
	noTimestamp bool
	noColor     bool
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, now: time.Now}

	a.root = &cobra.Command{
		Use:   "jrnl [date-expression...]",
		Short: "A command-line journaling tool",
		Long: `jrnl keeps a journal as one plain-text file per day, organized into
year directories, and opens entries in your editor.

Entries are addressed by date expressions:

  jrnl                  open today's entry
  jrnl 2024-06-15       open a specific date
  jrnl -1               yesterday (offsets count back from today)
  jrnl head             the latest existing entry
  jrnl @2024-06-15      the existing entry closest to a date
  jrnl head^^           two existing entries before the latest
  jrnl 2024-06-15~3     three existing entries before a date`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd, args)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")
	a.root.Flags().StringVarP(&a.editorFlag, "editor", "e", "", "editor to use")
	a.root.Flags().BoolVarP(&a.timestamp, "timestamp", "t", false, "write a timestamp before opening the editor")
	a.root.Flags().BoolVar(&a.noTimestamp, "no-timestamp", false, "don't write a timestamp before opening the editor")
	a.root.MarkFlagsMutuallyExclusive("timestamp", "no-timestamp")

	a.root.AddCommand(a.grepCmd())
	a.root.AddCommand(a.pickCmd())
	a.root.AddCommand(a.pathCmd())
	a.root.AddCommand(a.setupCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.versionCmd())

	return a
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("jrnl %s (commit: %s)\n", Version, Commit)
		},
	}
}

func (a *App) setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Print a sample configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sample, err := config.Sample()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), sample)
			return nil
		},
	}
}

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the active configuration",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s = %q\n", "editor", a.config.Editor)
			fmt.Fprintf(out, "%s = %q\n", "journal_path", a.config.JournalPath)
			fmt.Fprintf(out, "%s = %d\n", "hours_past_midnight_included_in_date", a.config.HoursPastMidnight)
			fmt.Fprintf(out, "%s = %t\n", "create_new_entries_when_specifying_dates", a.config.CreateNewEntries)
			fmt.Fprintf(out, "%s = %t\n", "write_timestamps_by_default", a.config.WriteTimestamps)
		},
	}
}
