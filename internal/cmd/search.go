package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/josephdiniso/minigrep/internal/config"
	"github.com/josephdiniso/minigrep/internal/display"
	"github.com/josephdiniso/minigrep/internal/fileutil"
	"github.com/josephdiniso/minigrep/internal/logger"
	"github.com/josephdiniso/minigrep/internal/search"
	"github.com/spf13/cobra"
)

// runSearch implements the root command
func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Build(args)
	if err != nil {
		return err
	}

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	useColor, err := display.ResolveColor(opts.Color, out)
	if err != nil {
		return err
	}
	log := logger.NewConsoleLogger(errOut, opts.LogLevel)

	// Compile once, before any file is read
	matcher, err := search.Compile(cfg.Query, !opts.CaseSensitive)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidArguments, err)
	}

	log.LogScanStart(cfg.Query, cfg.FilePath, cfg.IsDir)

	formatter := display.NewFormatter(out, useColor)
	if !cfg.IsDir {
		return searchFile(matcher, cfg.FilePath, formatter, opts, errOut)
	}
	return searchDirectory(cmd, matcher, cfg.FilePath, formatter, opts, log, errOut)
}

// loadOptions reads the settings file and applies command-line flags over it
func loadOptions(cmd *cobra.Command) (*config.Options, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var opts *config.Options
	var err error

	if configPath != "" {
		opts, err = config.LoadOptions(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		found, err := config.FindOptionsFile(".")
		if err != nil {
			return nil, fmt.Errorf("failed to locate config: %w", err)
		}
		opts = config.DefaultOptions()
		if found != "" {
			opts, err = config.LoadOptions(found)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", found, err)
			}
		}
	}

	flags := cmd.Flags()
	if flags.Changed("case-sensitive") && flags.Changed("ignore-case") {
		return nil, fmt.Errorf("%w: cannot use both --case-sensitive and --ignore-case", config.ErrInvalidArguments)
	}

	var caseSensitivePtr *bool
	if flags.Changed("case-sensitive") {
		v, _ := flags.GetBool("case-sensitive")
		caseSensitivePtr = &v
	} else if flags.Changed("ignore-case") {
		v, _ := flags.GetBool("ignore-case")
		v = !v
		caseSensitivePtr = &v
	}

	var logLevelPtr, colorPtr *string
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		logLevelPtr = &v
	}
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		colorPtr = &v
	}

	var skipHiddenPtr, statsPtr *bool
	if flags.Changed("skip-hidden") {
		v, _ := flags.GetBool("skip-hidden")
		skipHiddenPtr = &v
	}
	if flags.Changed("stats") {
		v, _ := flags.GetBool("stats")
		statsPtr = &v
	}

	var maxDepthPtr *int
	if flags.Changed("max-depth") {
		v, _ := flags.GetInt("max-depth")
		maxDepthPtr = &v
	}

	include, _ := flags.GetStringArray("include")
	excludeDirs, _ := flags.GetStringArray("exclude-dir")

	opts.MergeWithFlags(caseSensitivePtr, logLevelPtr, colorPtr, include, excludeDirs, skipHiddenPtr, maxDepthPtr, statsPtr)

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return opts, nil
}

// searchFile scans a single file; failing to read it is fatal
func searchFile(matcher *search.Matcher, path string, formatter *display.Formatter, opts *config.Options, errOut io.Writer) error {
	fr, err := search.ScanFile(matcher, path)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidArguments, err)
	}

	if err := formatter.WriteLines(fr.Lines); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	if opts.Stats {
		summary := formatter.Summary()
		summary.Scanned = 1
		summary.Display(errOut)
	}
	return nil
}

// searchDirectory scans every file under root, skipping files it cannot read
func searchDirectory(cmd *cobra.Command, matcher *search.Matcher, root string, formatter *display.Formatter, opts *config.Options, log logger.Logger, errOut io.Writer) error {
	displayRoot, err := fileutil.ResolveRoot(root)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	result, err := search.WalkTree(ctx, matcher, root, search.TreeOptions{
		Include:     opts.Include,
		ExcludeDirs: opts.ExcludeDirs,
		SkipHidden:  opts.SkipHidden,
		MaxDepth:    opts.MaxDepth,
		OnSkip:      log.LogSkipped,
	}, func(fr search.FileResult) error {
		if err := formatter.WriteFile(displayRoot, fr); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		return nil
	})
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			log.LogWarn("Search interrupted")
			return fmt.Errorf("search interrupted: %w", err)
		}
		return err
	}

	log.LogScanComplete(result, time.Since(start))

	if opts.Stats {
		summary := formatter.Summary()
		summary.Scanned = result.Scanned
		summary.Skipped = len(result.Skipped)
		summary.Display(errOut)
		if len(result.Skipped) > 0 {
			warnColor, _ := display.ResolveColor(opts.Color, errOut)
			display.WarnSkippedFiles(result.Root, result.Skipped).Display(errOut, warnColor)
		}
	}
	return nil
}
