package display

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/josephdiniso/minigrep/internal/search"
	"github.com/mattn/go-isatty"
)

// ResolveColor decides whether output to out should be colored.
// mode is one of "auto", "always" or "never".
func ResolveColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := out.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("invalid color mode %q, must be one of: auto, always, never", mode)
	}
}

// Formatter writes search results to an output stream and keeps running totals
// of what it has written.
type Formatter struct {
	out        io.Writer
	lineNumber *color.Color
	match      *color.Color
	path       *color.Color
	blocks     int
	summary    Summary
}

// NewFormatter creates a Formatter. colorOutput forces colors on or off
// regardless of what the color package detects for the process.
func NewFormatter(out io.Writer, colorOutput bool) *Formatter {
	return &Formatter{
		out:        out,
		lineNumber: newColor(color.FgGreen, colorOutput),
		match:      newColor(color.FgRed, colorOutput),
		path:       newColor(color.FgBlue, colorOutput),
	}
}

func newColor(attr color.Attribute, enabled bool) *color.Color {
	c := color.New(attr)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// FormatLine renders one result as "<number>: <text>" with spans highlighted.
// Spans are byte offsets into Text; out-of-range spans are clamped.
func (f *Formatter) FormatLine(lr search.LineResult) string {
	var b strings.Builder
	b.WriteString(f.lineNumber.Sprint(lr.Number))
	b.WriteString(": ")

	pos := 0
	for _, span := range lr.Spans {
		start, end := clamp(span.Start, pos, len(lr.Text)), clamp(span.End, pos, len(lr.Text))
		if start >= end {
			continue
		}
		b.WriteString(lr.Text[pos:start])
		b.WriteString(f.match.Sprint(lr.Text[start:end]))
		pos = end
	}
	b.WriteString(lr.Text[pos:])

	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WriteLines writes every line result, one per line, with no file header.
func (f *Formatter) WriteLines(lines []search.LineResult) error {
	for _, lr := range lines {
		if _, err := fmt.Fprintln(f.out, f.FormatLine(lr)); err != nil {
			return err
		}
		f.summary.Lines++
		f.summary.Matches += len(lr.Spans)
	}
	return nil
}

// WriteFile writes a file block: the path relative to root, then its lines.
// Blocks after the first are preceded by a blank line. Files without lines
// are ignored.
func (f *Formatter) WriteFile(root string, fr search.FileResult) error {
	if len(fr.Lines) == 0 {
		return nil
	}

	if f.blocks > 0 {
		if _, err := fmt.Fprintln(f.out); err != nil {
			return err
		}
	}
	f.blocks++
	f.summary.Files++

	if _, err := fmt.Fprintln(f.out, f.path.Sprint(RelativePath(root, fr.Path))); err != nil {
		return err
	}
	return f.WriteLines(fr.Lines)
}

// Summary returns totals for everything written so far.
func (f *Formatter) Summary() Summary {
	return f.summary
}

// RelativePath returns path relative to root, or path unchanged when it is not
// inside root.
func RelativePath(root, path string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
