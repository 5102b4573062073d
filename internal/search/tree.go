package search

import (
	"context"
	"fmt"

	"github.com/josephdiniso/minigrep/internal/fileutil"
)

// TreeOptions filters the files a tree scan visits. The zero value scans every
// regular file reachable from the root.
type TreeOptions struct {
	// Include restricts the scan to files matching one of these doublestar globs
	Include []string
	// ExcludeDirs lists directory names or globs that are not descended into
	ExcludeDirs []string
	// SkipHidden skips dot-files and dot-directories
	SkipHidden bool
	// MaxDepth limits recursion depth (0 = unlimited, 1 = root dir only)
	MaxDepth int
	// OnSkip, if set, is called for every file or entry the scan skips
	OnSkip func(SkippedFile)
}

// SkippedFile is a file or directory entry left out of a tree scan because it
// could not be read.
type SkippedFile struct {
	Path string
	Err  error
}

// TreeResult summarizes a tree scan.
type TreeResult struct {
	// Root is the absolute directory that was walked
	Root string
	// Files holds the files with at least one matching line, in traversal order.
	// WalkTree leaves it empty.
	Files []FileResult
	// Skipped lists what could not be read, in the order it was encountered
	Skipped []SkippedFile
	// Scanned counts files that were read and searched
	Scanned int
	// Matched counts files with at least one matching line
	Matched int
}

// ScanTree searches every regular file under root and collects the files that
// have matches.
func ScanTree(ctx context.Context, m *Matcher, root string, opts TreeOptions) (*TreeResult, error) {
	var files []FileResult
	result, err := WalkTree(ctx, m, root, opts, func(fr FileResult) error {
		files = append(files, fr)
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Files = files
	return result, nil
}

// WalkTree searches every regular file under root and calls fn for each file
// with at least one matching line, in lexicographic path order. Files that
// cannot be read are skipped and recorded; they never stop the walk.
//
// The walk stops early only when ctx is done or fn returns an error.
func WalkTree(ctx context.Context, m *Matcher, root string, opts TreeOptions, fn func(FileResult) error) (*TreeResult, error) {
	listing, err := fileutil.ScanDirectory(root, fileutil.ScanOptions{
		Include:     opts.Include,
		ExcludeDirs: opts.ExcludeDirs,
		SkipHidden:  opts.SkipHidden,
		MaxDepth:    opts.MaxDepth,
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	result := &TreeResult{Root: listing.Root}
	skip := func(sf SkippedFile) {
		result.Skipped = append(result.Skipped, sf)
		if opts.OnSkip != nil {
			opts.OnSkip(sf)
		}
	}

	for _, entry := range listing.Skipped {
		skip(SkippedFile{Path: entry.Path, Err: entry.Err})
	}

	for _, path := range listing.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		fr, ok := scanOrSkip(m, path, skip)
		if !ok {
			continue
		}
		result.Scanned++
		if len(fr.Lines) == 0 {
			continue
		}
		result.Matched++
		if err := fn(*fr); err != nil {
			return result, err
		}
	}

	return result, nil
}

// scanOrSkip is the per-file failure boundary of a tree scan: a file that
// cannot be scanned is handed to skip and reported as not ok.
func scanOrSkip(m *Matcher, path string, skip func(SkippedFile)) (*FileResult, bool) {
	fr, err := ScanFile(m, path)
	if err != nil {
		skip(SkippedFile{Path: path, Err: err})
		return nil, false
	}
	return fr, true
}
