package main

import (
	"fmt"

	"github.com/fwojciec/lumi"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Searcher.Search(deps.Ctx, c.Query, c.Max, sortMode(c.Sort))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lumi.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results.")
		return nil
	}
	printResults(deps, results)
	return nil
}

func sortMode(name string) lumi.SortMode {
	switch name {
	case "size":
		return lumi.SortSizeDesc
	case "date":
		return lumi.SortDateModifiedDesc
	}
	return lumi.SortDefault
}
