package main

import (
	"fmt"

	"github.com/fwojciec/lumi"
	"github.com/fwojciec/lumi/fs"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	indexer := &fs.Indexer{
		Index:       deps.Index,
		Concurrency: c.Concurrency,
		SkipHidden:  !c.Hidden,
	}

	progress := func(event fs.ProgressEvent) {
		switch event.Type {
		case fs.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Indexing %d roots\n", event.Total)
		case fs.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  %s: %d entries\n", event.Root, event.Files)
		case fs.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Root, lumi.ErrorMessage(event.Error))
		case fs.ProgressFinished:
			// Summary printed after indexing completes
		}
	}

	result, err := indexer.IndexRoots(deps.Ctx, c.Roots, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error indexing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d entries (%s) from %d roots", result.Files, fs.FormatBytes(result.Bytes), result.Roots)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed)", result.Failed)
	}
	fmt.Fprintln(deps.Stdout)

	if result.Roots == 0 {
		return lumi.Errorf(lumi.EINVALID, "no roots could be indexed")
	}
	return nil
}
