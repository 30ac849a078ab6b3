package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"litcast/internal/config"
	"litcast/internal/diag"
	"litcast/internal/diagfmt"
	"litcast/internal/driver"
	"litcast/internal/observ"
	"litcast/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.cs|directory>",
	Short: "Find casts of numeric literals in C# sources",
	Long:  `Check scans a C# file or all *.cs files within a directory for casts of numeric literals that can be rewritten as suffixed literals`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().StringSlice("exclude", nil, "glob patterns for files or directories to skip")
	checkCmd.Flags().Bool("assume-unchecked", false, "treat code outside checked/unchecked regions as unchecked")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	checkCmd.Flags().Bool("preview", false, "include before/after previews for fixes")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("disk-cache", false, "enable persistent result cache")
	checkCmd.Flags().String("ui", "auto", "progress UI for directory runs (auto|on|off)")
}

// checkSettings is the flag and manifest state merged per invocation.
// Explicitly set flags win over litcast.toml values.
type checkSettings struct {
	format          string
	jobs            int
	exclude         []string
	assumeUnchecked bool
	maxDiagnostics  int
	useColor        bool
	pathMode        diagfmt.PathMode
	withNotes       bool
	showFixes       bool
	showPreview     bool
	quiet           bool
}

func runCheck(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	st, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	settings, err := resolveCheckSettings(cmd, targetPath, st.IsDir())
	if err != nil {
		return err
	}

	opts := driver.CheckOptions{
		MaxDiagnostics:  settings.maxDiagnostics,
		AssumeUnchecked: settings.assumeUnchecked,
	}
	useCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return err
	}
	if useCache {
		cache, err := driver.OpenDiskCache("litcast")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
		opts.Cache = cache
	}

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	timer := observ.NewTimer()

	var (
		exitCode int
		runErr   error
	)
	if st.IsDir() {
		exitCode, runErr = runCheckDir(cmd, targetPath, opts, settings, timer)
	} else {
		exitCode, runErr = runCheckFile(targetPath, opts, settings, timer)
	}

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if runErr != nil {
		return runErr
	}
	if exitCode != 0 {
		// Suppress cobra usage output: diagnostics are already printed
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

// resolveCheckSettings merges persistent flags, command flags, and the
// nearest litcast.toml. A flag the user set explicitly always wins.
func resolveCheckSettings(cmd *cobra.Command, targetPath string, isDir bool) (checkSettings, error) {
	var s checkSettings

	startDir := targetPath
	if !isDir {
		startDir = filepath.Dir(targetPath)
	}
	var cfg config.Config
	if manifest, ok, err := config.Load(startDir); err != nil {
		return s, err
	} else if ok {
		cfg = manifest.Config
	}

	flags := cmd.Flags()
	persistent := cmd.Root().PersistentFlags()

	s.format, _ = flags.GetString("format")
	if !flags.Changed("format") && cfg.Output.Format != "" {
		s.format = cfg.Output.Format
	}
	switch s.format {
	case "pretty", "json", "short":
	default:
		return s, fmt.Errorf("unknown format: %s", s.format)
	}

	s.jobs, _ = flags.GetInt("jobs")
	if !flags.Changed("jobs") && cfg.Check.Jobs > 0 {
		s.jobs = cfg.Check.Jobs
	}

	s.exclude = append(s.exclude, cfg.Check.Exclude...)
	if flagExclude, err := flags.GetStringSlice("exclude"); err == nil {
		s.exclude = append(s.exclude, flagExclude...)
	}

	s.assumeUnchecked, _ = flags.GetBool("assume-unchecked")
	if !flags.Changed("assume-unchecked") && cfg.Check.AssumeUnchecked {
		s.assumeUnchecked = true
	}

	s.maxDiagnostics, _ = persistent.GetInt("max-diagnostics")
	if !persistent.Changed("max-diagnostics") && cfg.Check.MaxDiagnostics > 0 {
		s.maxDiagnostics = cfg.Check.MaxDiagnostics
	}

	colorFlag, err := persistent.GetString("color")
	if err != nil {
		return s, err
	}
	if !persistent.Changed("color") && cfg.Output.Color != "" {
		colorFlag = cfg.Output.Color
	}
	switch colorFlag {
	case "auto", "on", "off":
	default:
		return s, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}
	s.useColor = colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	fullPath, _ := flags.GetBool("fullpath")
	s.pathMode = diagfmt.PathModeAuto
	if fullPath {
		s.pathMode = diagfmt.PathModeAbsolute
	} else {
		switch cfg.Output.PathMode {
		case "absolute":
			s.pathMode = diagfmt.PathModeAbsolute
		case "relative":
			s.pathMode = diagfmt.PathModeRelative
		case "basename":
			s.pathMode = diagfmt.PathModeBasename
		}
	}

	s.withNotes, _ = flags.GetBool("with-notes")
	suggest, _ := flags.GetBool("suggest")
	s.showPreview, _ = flags.GetBool("preview")
	s.showFixes = suggest || s.showPreview
	s.quiet, _ = persistent.GetBool("quiet")

	return s, nil
}

func (s checkSettings) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:       s.useColor,
		Context:     2,
		PathMode:    s.pathMode,
		ShowNotes:   s.withNotes,
		ShowFixes:   s.showFixes,
		ShowPreview: s.showPreview,
	}
}

func (s checkSettings) jsonOpts() diagfmt.JSONOpts {
	return diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         s.pathMode,
		IncludeNotes:     s.withNotes,
		IncludeFixes:     s.showFixes,
		IncludePreviews:  s.showPreview,
	}
}

func runCheckFile(path string, opts driver.CheckOptions, settings checkSettings, timer *observ.Timer) (int, error) {
	scan := timer.Begin("scan")
	fs, res, err := driver.CheckFile(path, opts)
	timer.End(scan, path)
	if err != nil {
		return 0, fmt.Errorf("check failed: %w", err)
	}

	report := timer.Begin("report")
	err = emitBag(res.Bag, fs, settings)
	timer.End(report, settings.format)
	if err != nil {
		return 0, err
	}
	if !settings.quiet && settings.format == "pretty" {
		fmt.Fprintf(os.Stdout, "%d cast(s) flagged\n", res.Flagged)
	}

	if res.Bag.HasErrors() || res.Flagged > 0 {
		return 1, nil
	}
	return 0, nil
}

func runCheckDir(cmd *cobra.Command, dir string, opts driver.CheckOptions, settings checkSettings, timer *observ.Timer) (int, error) {
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return 0, err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return 0, err
	}
	// Interactive progress only makes sense for the human-readable format.
	useTUI := settings.format == "pretty" && !settings.quiet && shouldUseTUI(mode)

	dirOpts := driver.DirOptions{
		CheckOptions: opts,
		Jobs:         settings.jobs,
		Exclude:      settings.exclude,
	}

	var (
		fs      *source.FileSet
		results []driver.FileResult
	)
	scan := timer.Begin("scan")
	if useTUI {
		fs, results, err = runCheckDirWithUI(cmd.Context(), dir, dirOpts)
	} else {
		fs, results, err = driver.CheckDir(cmd.Context(), dir, dirOpts)
	}
	timer.End(scan, dir)
	if err != nil {
		return 0, fmt.Errorf("check failed: %w", err)
	}

	report := timer.Begin("report")
	merged := driver.MergeBags(results)
	err = emitBag(merged, fs, settings)
	timer.End(report, settings.format)
	if err != nil {
		return 0, err
	}

	flagged := 0
	hasErrors := false
	for _, r := range results {
		flagged += r.Flagged
		if r.Bag != nil && r.Bag.HasErrors() {
			hasErrors = true
		}
	}
	if !settings.quiet && settings.format == "pretty" {
		fmt.Fprintf(os.Stdout, "%d cast(s) flagged in %d file(s)\n", flagged, len(results))
	}

	if hasErrors || flagged > 0 {
		return 1, nil
	}
	return 0, nil
}

func emitBag(bag *diag.Bag, fs *source.FileSet, settings checkSettings) error {
	switch settings.format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, bag, fs, settings.prettyOpts())
	case "short":
		output := diag.FormatShort(bag.Items(), fs, settings.withNotes)
		if output != "" {
			fmt.Fprint(os.Stdout, output)
		}
	case "json":
		if err := diagfmt.JSON(os.Stdout, bag, fs, settings.jsonOpts()); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	}
	return nil
}
