package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"litcast/internal/driver"
	"litcast/internal/source"
	"litcast/internal/ui"
)

type checkOutcome struct {
	fs      *source.FileSet
	results []driver.FileResult
	err     error
}

// runCheckDirWithUI runs a directory check while a Bubble Tea progress view
// consumes per-file events. The check itself runs on its own goroutine so the
// UI stays responsive.
func runCheckDirWithUI(ctx context.Context, dir string, opts driver.DirOptions) (*source.FileSet, []driver.FileResult, error) {
	files, err := driver.ListSourceFiles(dir, opts.Exclude)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	optsCopy := opts
	optsCopy.Progress = func(ev driver.Event) {
		events <- ev
	}

	go func() {
		fs, results, err := driver.CheckDir(ctx, dir, optsCopy)
		outcomeCh <- checkOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("litcast check "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
