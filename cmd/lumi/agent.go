package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/lumi"
)

// Run executes the agent command.
func (c *AgentCmd) Run(deps *Dependencies) error {
	outcome, err := deps.Agent.Handle(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lumi.ErrorMessage(err))
		return err
	}

	if c.JSON {
		if outcome.Results == nil {
			outcome.Results = []*lumi.SearchResult{}
		}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(outcome)
	}

	fmt.Fprintln(deps.Stdout, outcome.Message)
	printResults(deps, outcome.Results)
	return nil
}

func printResults(deps *Dependencies, results []*lumi.SearchResult) {
	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "  %s\t%s\n", r.Name, r.Path)
	}
}
