package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions verifies default option values
func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.False(t, opts.CaseSensitive)
	assert.Equal(t, "info", opts.LogLevel)
	assert.Equal(t, "auto", opts.Color)
	assert.Empty(t, opts.Include)
	assert.Empty(t, opts.ExcludeDirs)
	assert.False(t, opts.SkipHidden)
	assert.Zero(t, opts.MaxDepth)
	assert.False(t, opts.Stats)
	assert.NoError(t, opts.Validate())
}

// TestLoadOptionsValidFile tests loading a valid YAML settings file
func TestLoadOptionsValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, OptionsFileName)

	content := `case_sensitive: true
log_level: debug
color: never
include:
  - "*.go"
  - "*.md"
exclude_dirs: [".git", "vendor"]
skip_hidden: true
max_depth: 3
stats: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)

	assert.True(t, opts.CaseSensitive)
	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, "never", opts.Color)
	assert.Equal(t, []string{"*.go", "*.md"}, opts.Include)
	assert.Equal(t, []string{".git", "vendor"}, opts.ExcludeDirs)
	assert.True(t, opts.SkipHidden)
	assert.Equal(t, 3, opts.MaxDepth)
	assert.True(t, opts.Stats)
}

// TestLoadOptionsPartialFile tests that missing keys keep their defaults
func TestLoadOptionsPartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, OptionsFileName), []byte("color: always\n"), 0644))

	opts, err := LoadOptionsFromDir(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "always", opts.Color)
	assert.Equal(t, "info", opts.LogLevel)
	assert.False(t, opts.CaseSensitive)
}

// TestLoadOptionsFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadOptionsFileNotExists(t *testing.T) {
	opts, err := LoadOptions("/nonexistent/path/.minigrep.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

// TestLoadOptionsMalformed tests that invalid YAML is reported
func TestLoadOptionsMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, OptionsFileName)
	require.NoError(t, os.WriteFile(path, []byte("color: [unclosed\n"), 0644))

	_, err := LoadOptions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

// TestFindOptionsFile tests lookup through parent directories and the env override
func TestFindOptionsFile(t *testing.T) {
	t.Setenv(OptionsEnvVar, "")

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	want := filepath.Join(root, OptionsFileName)
	require.NoError(t, os.WriteFile(want, []byte("stats: true\n"), 0644))

	t.Run("found in parent", func(t *testing.T) {
		got, err := FindOptionsFile(nested)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("closest wins", func(t *testing.T) {
		closer := filepath.Join(root, "a", OptionsFileName)
		require.NoError(t, os.WriteFile(closer, []byte("stats: false\n"), 0644))
		t.Cleanup(func() { os.Remove(closer) })

		got, err := FindOptionsFile(nested)
		require.NoError(t, err)
		assert.Equal(t, closer, got)
	})

	t.Run("env var takes precedence", func(t *testing.T) {
		t.Setenv(OptionsEnvVar, "/custom/settings.yaml")
		got, err := FindOptionsFile(nested)
		require.NoError(t, err)
		assert.Equal(t, "/custom/settings.yaml", got)
	})
}

// TestMergeWithFlags tests that flags override file values
func TestMergeWithFlags(t *testing.T) {
	opts := DefaultOptions()
	opts.Include = []string{"*.go"}

	caseSensitive := true
	logLevel := "warn"
	color := "never"
	skipHidden := true
	maxDepth := 2

	opts.MergeWithFlags(&caseSensitive, &logLevel, &color, []string{"*.md"}, []string{"vendor"}, &skipHidden, &maxDepth, nil)

	assert.True(t, opts.CaseSensitive)
	assert.Equal(t, "warn", opts.LogLevel)
	assert.Equal(t, "never", opts.Color)
	assert.Equal(t, []string{"*.go", "*.md"}, opts.Include)
	assert.Equal(t, []string{"vendor"}, opts.ExcludeDirs)
	assert.True(t, opts.SkipHidden)
	assert.Equal(t, 2, opts.MaxDepth)
	assert.False(t, opts.Stats, "nil flag must not change the value")
}

// TestMergeWithFlagsNil tests that nil flags leave options unchanged
func TestMergeWithFlagsNil(t *testing.T) {
	opts := DefaultOptions()
	opts.MergeWithFlags(nil, nil, nil, nil, nil, nil, nil, nil)
	assert.Equal(t, DefaultOptions(), opts)
}

// TestValidate tests option validation
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Options)
		wantErr string
	}{
		{name: "defaults are valid", modify: func(o *Options) {}},
		{name: "bad log level", modify: func(o *Options) { o.LogLevel = "verbose" }, wantErr: "invalid log_level"},
		{name: "bad color", modify: func(o *Options) { o.Color = "sometimes" }, wantErr: "invalid color"},
		{name: "negative depth", modify: func(o *Options) { o.MaxDepth = -1 }, wantErr: "max_depth must be >= 0"},
		{name: "bad include", modify: func(o *Options) { o.Include = []string{"[a"} }, wantErr: "invalid include glob"},
		{name: "bad exclude", modify: func(o *Options) { o.ExcludeDirs = []string{"{a"} }, wantErr: "invalid exclude_dirs glob"},
		{name: "good globs", modify: func(o *Options) {
			o.Include = []string{"**/*.go"}
			o.ExcludeDirs = []string{"node_*"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(opts)
			err := opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr), "got %q", err.Error())
		})
	}
}
