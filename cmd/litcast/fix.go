package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"litcast/internal/diag"
	"litcast/internal/driver"
	"litcast/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.cs|directory>",
	Short: "Rewrite flagged casts into suffixed literals",
	Long:  "Run the cast check, surface available fixes, and apply them according to the chosen strategy.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply all safe fixes")
	fixCmd.Flags().Bool("once", false, "apply the first available fix (default)")
	fixCmd.Flags().String("id", "", "apply fixes with a specific identifier")
	fixCmd.Flags().Bool("dry-run", false, "report what would change without writing files")
	fixCmd.Flags().Bool("assume-unchecked", false, "treat code outside checked/unchecked regions as unchecked")
	fixCmd.Flags().StringSlice("exclude", nil, "glob patterns for files or directories to skip")
}

func runFix(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	applyOnceFlag, err := cmd.Flags().GetBool("once")
	if err != nil {
		return err
	}
	targetID, err := cmd.Flags().GetString("id")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	if targetID != "" && (applyAll || applyOnceFlag) {
		return fmt.Errorf("--id cannot be combined with --all or --once")
	}
	if applyAll && applyOnceFlag {
		return fmt.Errorf("--all and --once are mutually exclusive")
	}

	mode := fix.ApplyModeOnce
	if targetID != "" {
		mode = fix.ApplyModeID
	} else if applyAll {
		mode = fix.ApplyModeAll
	}
	applyOpts := fix.ApplyOptions{
		Mode:     mode,
		TargetID: targetID,
		DryRun:   dryRun,
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	assumeUnchecked, err := cmd.Flags().GetBool("assume-unchecked")
	if err != nil {
		return err
	}
	checkOpts := driver.CheckOptions{
		MaxDiagnostics:  maxDiagnostics,
		AssumeUnchecked: assumeUnchecked,
	}

	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}

	if !info.IsDir() {
		return runFixFile(targetPath, checkOpts, applyOpts, dryRun)
	}
	exclude, err := cmd.Flags().GetStringSlice("exclude")
	if err != nil {
		return err
	}
	return runFixDir(cmd.Context(), targetPath, checkOpts, applyOpts, exclude, dryRun)
}

func runFixFile(path string, checkOpts driver.CheckOptions, applyOpts fix.ApplyOptions, dryRun bool) error {
	fs, result, err := driver.CheckFile(path, checkOpts)
	if err != nil {
		return fmt.Errorf("fix: check failed: %w", err)
	}
	var diagnostics []diag.Diagnostic
	if result.Bag != nil {
		result.Bag.Sort()
		diagnostics = append(diagnostics, result.Bag.Items()...)
	}
	res, applyErr := fix.Apply(fs, diagnostics, applyOpts)
	return handleApplyResult(res, applyErr, dryRun)
}

func runFixDir(ctx context.Context, path string, checkOpts driver.CheckOptions, applyOpts fix.ApplyOptions, exclude []string, dryRun bool) error {
	fs, results, err := driver.CheckDir(ctx, path, driver.DirOptions{
		CheckOptions: checkOpts,
		Exclude:      exclude,
	})
	if err != nil {
		return fmt.Errorf("fix: check failed: %w", err)
	}

	diagnostics := make([]diag.Diagnostic, 0)
	for _, r := range results {
		if r.Bag == nil {
			continue
		}
		r.Bag.Sort()
		diagnostics = append(diagnostics, r.Bag.Items()...)
	}

	res, applyErr := fix.Apply(fs, diagnostics, applyOpts)
	return handleApplyResult(res, applyErr, dryRun)
}

func handleApplyResult(res *fix.ApplyResult, applyErr error, dryRun bool) error {
	if res == nil {
		return applyErr
	}

	verb := "Applied"
	if dryRun {
		verb = "Would apply"
	}

	if len(res.Applied) > 0 {
		fmt.Fprintf(os.Stdout, "%s %d fix(es):\n", verb, len(res.Applied))
		for _, item := range res.Applied {
			location := item.PrimaryPath
			if location == "" {
				location = "(unknown location)"
			}
			fmt.Fprintf(
				os.Stdout,
				"  %s [%s] at %s (%d edits, %s)\n",
				item.Title,
				item.ID,
				location,
				item.EditCount,
				item.Applicability.String(),
			)
		}
	}

	if len(res.FileChanges) > 0 {
		if dryRun {
			fmt.Fprintln(os.Stdout, "Files that would change:")
		} else {
			fmt.Fprintln(os.Stdout, "Updated files:")
		}
		for _, change := range res.FileChanges {
			fmt.Fprintf(os.Stdout, "  %s (%d edits)\n", change.Path, change.EditCount)
		}
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintln(os.Stdout, "Skipped fixes:")
		for _, skip := range res.Skipped {
			id := skip.ID
			if id == "" {
				id = "(unnamed)"
			}
			if skip.Title != "" {
				fmt.Fprintf(os.Stdout, "  %s [%s]: %s\n", skip.Title, id, skip.Reason)
			} else {
				fmt.Fprintf(os.Stdout, "  [%s]: %s\n", id, skip.Reason)
			}
		}
	}

	if applyErr != nil {
		if errors.Is(applyErr, fix.ErrNoFixes) && len(res.Applied) == 0 {
			fmt.Fprintln(os.Stdout, "No applicable fixes found.")
			return nil
		}
		return applyErr
	}

	if len(res.Applied) == 0 {
		fmt.Fprintln(os.Stdout, "No fixes applied.")
	}
	return nil
}
