package cmd

import (
	"fmt"

	"github.com/josephdiniso/minigrep/internal/config"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for minigrep
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minigrep <query> [path]",
		Short: "Search files for lines matching a pattern",
		Long: `minigrep searches a file, or every file under a directory, for lines
matching a regular expression and prints them with the matches highlighted.

The query uses RE2 syntax and is case-insensitive unless --case-sensitive is
given. When no path is given the current directory is searched. Files that
cannot be read while searching a directory are skipped.

Settings are loaded from .minigrep.yaml in the current directory or the
closest parent directory containing one (or from $MINIGREP_CONFIG).
CLI flags override settings from the file.

Examples:
  minigrep duct poem.txt                  # Search a single file
  minigrep 'fn \w+' src/                  # Search a directory tree
  minigrep TODO                           # Search the current directory
  minigrep -s Error --include '*.go' .    # Case-sensitive, Go files only
  minigrep main --exclude-dir vendor --skip-hidden
  minigrep fast --color always | less -R  # Keep colors through a pipe`,
		Args:    positionalArgs,
		RunE:    runSearch,
		Version: Version,
		// main prints the error; silence cobra's copy and the usage text
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolP("case-sensitive", "s", false, "Match case exactly")
	cmd.Flags().BoolP("ignore-case", "i", false, "Ignore case (default, overrides config)")
	cmd.Flags().String("color", "", "When to highlight matches: auto, always, never (default: auto)")
	cmd.Flags().StringArray("include", nil, "Only search files matching this glob (repeatable)")
	cmd.Flags().StringArray("exclude-dir", nil, "Skip directories matching this name or glob (repeatable)")
	cmd.Flags().Bool("skip-hidden", false, "Skip hidden files and directories")
	cmd.Flags().Int("max-depth", 0, "Maximum directory depth to descend (0 = unlimited)")
	cmd.Flags().String("log-level", "", "Diagnostic verbosity: trace, debug, info, warn, error")
	cmd.Flags().String("config", "", "Path to settings file (default: nearest .minigrep.yaml)")
	cmd.Flags().Bool("stats", false, "Print a match summary to stderr")

	return cmd
}

// positionalArgs rejects more than a query and a path
func positionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("%w: accepts at most 2 args (query and path), received %d", config.ErrInvalidArguments, len(args))
	}
	return nil
}
