package main

import (
	"fmt"

	"github.com/fwojciec/lumi"
	"github.com/fwojciec/lumi/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.ReadDocument(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lumi.ErrorMessage(err))
		return err
	}

	if c.Output == "" {
		fmt.Fprintln(deps.Stdout, doc.Content)
		return nil
	}

	path, err := fs.NewWriter(c.Output).WriteDocument(deps.Ctx, doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lumi.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s (%s)\n", path, doc.Format)
	return nil
}
