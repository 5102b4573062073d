package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// OptionsFileName is the name of the settings file looked up by FindOptionsFile
const OptionsFileName = ".minigrep.yaml"

// OptionsEnvVar overrides the settings file location when set
const OptionsEnvVar = "MINIGREP_CONFIG"

// Options represents minigrep settings shared by every run
type Options struct {
	// CaseSensitive disables the default case-insensitive matching
	CaseSensitive bool `yaml:"case_sensitive"`

	// LogLevel sets the diagnostic verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Color controls match highlighting (auto, always, never)
	Color string `yaml:"color"`

	// Include restricts directory scans to files matching these globs
	Include []string `yaml:"include"`

	// ExcludeDirs lists directory names or globs skipped during directory scans
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// SkipHidden skips dot-files and dot-directories during directory scans
	SkipHidden bool `yaml:"skip_hidden"`

	// MaxDepth limits directory recursion (0 = unlimited)
	MaxDepth int `yaml:"max_depth"`

	// Stats prints a match summary to stderr after the scan
	Stats bool `yaml:"stats"`
}

// DefaultOptions returns Options with sensible default values
func DefaultOptions() *Options {
	return &Options{
		CaseSensitive: false,
		LogLevel:      "info",
		Color:         "auto",
		Include:       nil,
		ExcludeDirs:   nil,
		SkipHidden:    false,
		MaxDepth:      0, // Unlimited
		Stats:         false,
	}
}

// LoadOptions loads options from the specified file path
// If the file doesn't exist, returns default options without error
// If the file exists but is malformed, returns an error
func LoadOptions(path string) (*Options, error) {
	opts := DefaultOptions()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Decode into a map first so keys present in the file override defaults
	// even when their value is the zero value
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	var fileOpts Options
	if err := yaml.Unmarshal(data, &fileOpts); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, ok := raw["case_sensitive"]; ok {
		opts.CaseSensitive = fileOpts.CaseSensitive
	}
	if fileOpts.LogLevel != "" {
		opts.LogLevel = fileOpts.LogLevel
	}
	if fileOpts.Color != "" {
		opts.Color = fileOpts.Color
	}
	if _, ok := raw["include"]; ok {
		opts.Include = fileOpts.Include
	}
	if _, ok := raw["exclude_dirs"]; ok {
		opts.ExcludeDirs = fileOpts.ExcludeDirs
	}
	if _, ok := raw["skip_hidden"]; ok {
		opts.SkipHidden = fileOpts.SkipHidden
	}
	if _, ok := raw["max_depth"]; ok {
		opts.MaxDepth = fileOpts.MaxDepth
	}
	if _, ok := raw["stats"]; ok {
		opts.Stats = fileOpts.Stats
	}

	return opts, nil
}

// LoadOptionsFromDir loads options from .minigrep.yaml in the specified directory
// If the file doesn't exist, returns default options without error
func LoadOptionsFromDir(dir string) (*Options, error) {
	return LoadOptions(filepath.Join(dir, OptionsFileName))
}

// FindOptionsFile locates the settings file for a run
// Priority order:
//  1. MINIGREP_CONFIG environment variable (if set)
//  2. .minigrep.yaml in start or the closest parent directory containing one
//
// Returns an empty string when no file is found
func FindOptionsFile(start string) (string, error) {
	if path := os.Getenv(OptionsEnvVar); path != "" {
		return path, nil
	}

	current, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}

	for {
		candidate := filepath.Join(current, OptionsFileName)
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root
			return "", nil
		}
		current = parent
	}
}

// MergeWithFlags merges CLI flags into the options
// Non-nil flag values override values from the settings file
func (o *Options) MergeWithFlags(caseSensitive *bool, logLevel *string, color *string, include []string, excludeDirs []string, skipHidden *bool, maxDepth *int, stats *bool) {
	if caseSensitive != nil {
		o.CaseSensitive = *caseSensitive
	}
	if logLevel != nil {
		o.LogLevel = *logLevel
	}
	if color != nil {
		o.Color = *color
	}
	// Globs given on the command line add to the configured ones
	if len(include) > 0 {
		o.Include = append(append([]string(nil), o.Include...), include...)
	}
	if len(excludeDirs) > 0 {
		o.ExcludeDirs = append(append([]string(nil), o.ExcludeDirs...), excludeDirs...)
	}
	if skipHidden != nil {
		o.SkipHidden = *skipHidden
	}
	if maxDepth != nil {
		o.MaxDepth = *maxDepth
	}
	if stats != nil {
		o.Stats = *stats
	}
}

// Validate validates the option values
// Returns an error if any values are invalid
func (o *Options) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[o.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", o.LogLevel)
	}

	switch o.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", o.Color)
	}

	if o.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be >= 0, got %d", o.MaxDepth)
	}

	for _, p := range o.Include {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid include glob %q", p)
		}
	}
	for _, p := range o.ExcludeDirs {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid exclude_dirs glob %q", p)
		}
	}

	return nil
}
