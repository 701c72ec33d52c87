package main

import (
	"fmt"

	"github.com/fwojciec/lumi"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Asker.Ask(deps.Ctx, c.Prompt)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lumi.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
