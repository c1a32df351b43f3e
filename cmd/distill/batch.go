package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/batch"
	"github.com/fwojciec/distill/fs"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	runner := deps.Runner

	// Apply user-specified concurrency
	if c.Concurrency > 0 {
		runner.Concurrency = c.Concurrency
	}

	var store distill.ExtractionStore
	if c.Out != "" {
		store = fs.NewFileStore(filepath.Dir(c.Out), filepath.Base(c.Out))
		runner.Store = store
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Extracting %d files\n", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.File, event.Error)
		case batch.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result, err := runner.Run(deps.Ctx, c.Files, progress)
	if err != nil {
		if store != nil {
			_ = store.Abort()
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d extractions (%s), %d failed\n",
		result.Saved, batch.FormatBytes(result.Bytes), result.Failed)

	return nil
}
