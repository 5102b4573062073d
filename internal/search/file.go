package search

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrUnreadable is matched by every ScanError via errors.Is.
	ErrUnreadable = errors.New("file is unreadable")

	// ErrNotText is the cause of a ScanError for content that is not valid text.
	ErrNotText = errors.New("file content is not valid UTF-8 text")
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ScanError reports a file that could not be opened, read or decoded.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// Is makes every ScanError match ErrUnreadable.
func (e *ScanError) Is(target error) bool {
	return target == ErrUnreadable
}

// LineResult is one matching line.
type LineResult struct {
	// Number is the 1-based line number within the file
	Number int
	// Text is the line without its terminator
	Text string
	// Spans are the highlighted matches, sorted and non-overlapping
	Spans []Span
}

// FileResult holds the matching lines of one file, in file order.
type FileResult struct {
	Path  string
	Lines []LineResult
}

// MatchCount returns the total number of spans across all lines.
func (fr FileResult) MatchCount() int {
	n := 0
	for _, line := range fr.Lines {
		n += len(line.Spans)
	}
	return n
}

// ScanFile reads the file at path and returns its matching lines.
// A readable file without matches yields a FileResult with no lines and a nil
// error. Read and decode failures are returned as *ScanError.
func ScanFile(m *Matcher, path string) (*FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ScanError{Path: path, Err: err}
	}

	text, err := decodeText(data)
	if err != nil {
		return nil, &ScanError{Path: path, Err: err}
	}

	return &FileResult{
		Path:  path,
		Lines: SearchText(m, text),
	}, nil
}

// SearchText applies m to every line of text and returns the matching lines.
func SearchText(m *Matcher, text string) []LineResult {
	var results []LineResult
	for i, line := range SplitLines(text) {
		if !m.Matches(line) {
			continue
		}
		results = append(results, LineResult{
			Number: i + 1,
			Text:   line,
			Spans:  m.MatchLine(line),
		})
	}
	return results
}

// SplitLines splits text on "\n", dropping a trailing "\r" from each line.
// The last line is kept even without a terminator, a final terminator does not
// produce an extra empty line, and empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := make([]string, 0, strings.Count(text, "\n")+1)
	for len(text) > 0 {
		var line string
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			line, text = text, ""
		}
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}
	return lines
}

// decodeText converts raw file content to a string. UTF-16 content is accepted
// only with a byte order mark. A UTF-8 byte order mark is dropped.
func decodeText(data []byte) (string, error) {
	if bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF16BE) {
		decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return "", fmt.Errorf("decode UTF-16: %w", err)
		}
		return string(decoded), nil
	}

	data = bytes.TrimPrefix(data, bomUTF8)
	if !utf8.Valid(data) {
		return "", ErrNotText
	}
	return string(data), nil
}
