package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Include is a list of doublestar globs; when non-empty a file must match one of them,
	// either by its slash-separated path relative to the root or by its base name
	Include []string
	// ExcludeDirs is a list of directory names or globs to skip (e.g., ".git", "node_*")
	ExcludeDirs []string
	// SkipHidden skips directories and files whose name starts with "."
	SkipHidden bool
	// MaxDepth limits recursion depth (0 = unlimited, 1 = root dir only)
	MaxDepth int
}

// SkippedEntry is a directory entry that could not be inspected
type SkippedEntry struct {
	Path string
	Err  error
}

func (s SkippedEntry) Error() string {
	return fmt.Sprintf("error accessing %s: %v", s.Path, s.Err)
}

func (s SkippedEntry) Unwrap() error {
	return s.Err
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Root is the absolute, symlink-resolved directory that was walked
	Root string
	// Files contains the absolute paths of all regular files found, sorted
	Files []string
	// Skipped contains entries that could not be read; the walk continued past them
	Skipped []SkippedEntry
}

// ValidatePatterns reports the first malformed glob in patterns
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid glob pattern %q", p)
		}
	}
	return nil
}

// ScanDirectory walks dir and returns every regular file that passes opts
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	if err := ValidatePatterns(opts.Include); err != nil {
		return nil, err
	}
	if err := ValidatePatterns(opts.ExcludeDirs); err != nil {
		return nil, err
	}

	root, err := ResolveRoot(dir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	result := &ScanResult{
		Root:    root,
		Files:   make([]string, 0),
		Skipped: make([]SkippedEntry, 0),
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			result.Skipped = append(result.Skipped, SkippedEntry{Path: path, Err: err})
			return nil // Continue walking
		}

		if path == root {
			return nil
		}

		relPath, _ := filepath.Rel(root, path)
		relPath = filepath.ToSlash(relPath)
		name := d.Name()

		if d.IsDir() {
			if opts.SkipHidden && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if matchesAny(opts.ExcludeDirs, relPath, name) {
				return filepath.SkipDir
			}
			if opts.MaxDepth > 0 {
				depth := strings.Count(relPath, "/") + 1
				if depth >= opts.MaxDepth {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if opts.SkipHidden && strings.HasPrefix(name, ".") {
			return nil
		}

		regular, err := isRegularFile(path, d)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedEntry{Path: path, Err: err})
			return nil
		}
		if !regular {
			return nil
		}

		if len(opts.Include) > 0 && !matchesAny(opts.Include, relPath, name) {
			return nil
		}

		result.Files = append(result.Files, path)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	// Sort files for consistent output
	sort.Strings(result.Files)

	return result, nil
}

// ResolveRoot returns the absolute, symlink-free form of dir. ScanDirectory
// walks and reports paths under this form.
func ResolveRoot(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}

	// WalkDir does not follow a symlinked root
	root, err := filepath.EvalSymlinks(absDir)
	if err != nil {
		return "", fmt.Errorf("failed to access directory: %w", err)
	}
	return root, nil
}

// isRegularFile reports whether the entry is a regular file. Symlinks count when
// they resolve to a regular file; dangling links are not an error.
func isRegularFile(path string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// matchesAny reports whether relPath or name matches one of the globs
func matchesAny(patterns []string, relPath, name string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, relPath); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
