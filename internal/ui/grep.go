package ui

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwiens91/jrnl/internal/search"
)

// grepCmd searches journal entries by shelling out to grep. Flag parsing is
// disabled so that arbitrary grep options pass straight through.
func (a *App) grepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grep <pattern> [grep options...]",
		Short: "Search journal entries for a pattern",
		Long: `Search all journal entries for a pattern using grep. Any options are
passed through to grep unchanged; see 'man grep' for what's available.`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, opts, err := splitGrepArgs(args)
			if err != nil {
				if errors.Is(err, errHelpRequested) {
					return cmd.Help()
				}
				return err
			}
			return search.Grep(pattern, a.config.JournalPath, opts)
		},
	}
}

var errHelpRequested = errors.New("help requested")

// splitGrepArgs separates the search pattern from pass-through grep
// options: the first argument not starting with a dash is the pattern,
// everything else is handed to grep as-is.
func splitGrepArgs(args []string) (pattern string, opts []string, err error) {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return "", nil, errHelpRequested
		}
		if pattern == "" && !strings.HasPrefix(arg, "-") {
			pattern = arg
			continue
		}
		opts = append(opts, arg)
	}
	if pattern == "" {
		return "", nil, errors.New("a search pattern is required")
	}
	return pattern, opts, nil
}
