package display

import (
	"fmt"
	"io"
)

// Summary counts what a run printed.
type Summary struct {
	// Lines is the number of matching lines written
	Lines int
	// Matches is the number of highlighted spans written
	Matches int
	// Files is the number of file blocks written (directory mode only)
	Files int
	// Scanned is the number of files searched
	Scanned int
	// Skipped is the number of files that could not be read
	Skipped int
}

// Display writes a one-line summary, e.g.
// "4 matching lines (5 matches) in 2 files (10 scanned, 1 skipped)".
func (s Summary) Display(out io.Writer) {
	fmt.Fprintf(out, "%s (%s) in %s (%d scanned, %d skipped)\n",
		plural(s.Lines, "matching line", "matching lines"),
		plural(s.Matches, "match", "matches"),
		plural(s.Files, "file", "files"),
		s.Scanned, s.Skipped)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
