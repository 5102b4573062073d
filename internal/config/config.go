// Package config builds the per-run search configuration from command-line
// arguments and loads optional settings from a .minigrep.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrInvalidArguments is returned for a malformed invocation, such as a
	// missing query or a query that is not a valid pattern.
	ErrInvalidArguments = errors.New("invalid arguments provided")

	// ErrFileNotFound is returned when the search path does not exist or is
	// neither a regular file nor a directory.
	ErrFileNotFound = errors.New("file specified could not be found")
)

// Config is what to search and where
type Config struct {
	// Query is the pattern to search for
	Query string
	// FilePath is the file or directory to search
	FilePath string
	// IsDir is true when FilePath is a directory
	IsDir bool
}

// Build creates a Config from positional arguments (program name excluded).
// args[0] is the query and args[1] the optional path, which defaults to the
// current working directory.
func Build(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: missing query", ErrInvalidArguments)
	}
	query := args[0]

	if len(args) < 2 {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		return &Config{Query: query, FilePath: cwd, IsDir: true}, nil
	}

	path := args[1]
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	switch {
	case info.IsDir():
		return &Config{Query: query, FilePath: path, IsDir: true}, nil
	case info.Mode().IsRegular():
		return &Config{Query: query, FilePath: path, IsDir: false}, nil
	default:
		return nil, fmt.Errorf("%w: %s is neither a file nor a directory", ErrFileNotFound, path)
	}
}
