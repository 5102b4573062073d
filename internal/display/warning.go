package display

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/josephdiniso/minigrep/internal/search"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning, in yellow when colorOutput is set
func (w Warning) Display(out io.Writer, colorOutput bool) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, file))
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, newColor(color.FgYellow, colorOutput).Sprint(b.String()))
}

// WarnSkippedFiles creates a warning listing files a tree scan could not read,
// with paths shown relative to root
func WarnSkippedFiles(root string, skipped []search.SkippedFile) Warning {
	files := make([]string, len(skipped))
	for i, sf := range skipped {
		cause := sf.Err
		var scanErr *search.ScanError
		if errors.As(cause, &scanErr) {
			cause = scanErr.Err
		}
		files[i] = fmt.Sprintf("%s (%v)", RelativePath(root, sf.Path), cause)
	}

	title := "1 file could not be read"
	if len(skipped) != 1 {
		title = fmt.Sprintf("%d files could not be read", len(skipped))
	}

	return Warning{
		Title:      title,
		Files:      files,
		Suggestion: "Check file permissions or exclude these paths with --exclude-dir / --include",
	}
}
