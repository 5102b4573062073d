package search

import (
	"fmt"
	"regexp"
)

// PatternError reports a query that is not a valid regular expression.
type PatternError struct {
	Query string
	Err   error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Query, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Span is a half-open [Start, End) byte range of one match within a line.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Matcher is a compiled query. It holds no per-call state and can be shared
// across any number of lines and files.
type Matcher struct {
	query           string
	caseInsensitive bool
	re              *regexp.Regexp
}

// Compile compiles query using RE2 syntax. An empty query is valid and matches
// every line. Syntax errors are returned as *PatternError.
func Compile(query string, caseInsensitive bool) (*Matcher, error) {
	expr := query
	if caseInsensitive {
		expr = "(?i)" + query
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Query: query, Err: err}
	}

	return &Matcher{
		query:           query,
		caseInsensitive: caseInsensitive,
		re:              re,
	}, nil
}

// MustCompile is like Compile but panics on an invalid query.
func MustCompile(query string, caseInsensitive bool) *Matcher {
	m, err := Compile(query, caseInsensitive)
	if err != nil {
		panic(err)
	}
	return m
}

// Query returns the query the matcher was compiled from.
func (m *Matcher) Query() string {
	return m.query
}

// CaseInsensitive reports whether the matcher ignores case.
func (m *Matcher) CaseInsensitive() bool {
	return m.caseInsensitive
}

// Matches reports whether the line contains a match, including zero-width ones.
func (m *Matcher) Matches(line string) bool {
	return m.re.MatchString(line)
}

// MatchLine returns every non-overlapping match in line, left to right.
//
// After an empty match the scan resumes one rune further on, and an empty match
// directly after a previous match is not reported. Zero-width matches are left
// out of the result since they cover no text, so a line can satisfy Matches
// while MatchLine returns nil.
func (m *Matcher) MatchLine(line string) []Span {
	locs := m.re.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}

	var spans []Span
	for _, loc := range locs {
		if loc[1] <= loc[0] {
			continue
		}
		spans = append(spans, Span{Start: loc[0], End: loc[1]})
	}
	return spans
}
