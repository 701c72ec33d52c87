package main

import (
	"fmt"

	"github.com/fwojciec/lumi"
)

// Run executes the health command. It fails unless both checks are OK or WARN.
func (c *HealthCmd) Run(deps *Dependencies) error {
	model := deps.ModelHealth.CheckHealth(deps.Ctx)
	search := deps.SearchHealth.CheckHealth(deps.Ctx)

	fmt.Fprintf(deps.Stdout, "model:  %s  %s\n", model.Status, model.Detail)
	fmt.Fprintf(deps.Stdout, "search: %s  %s\n", search.Status, search.Detail)

	if !healthy(model) || !healthy(search) {
		return lumi.Errorf(lumi.EUNAVAILABLE, "health check failed")
	}
	return nil
}

func healthy(s lumi.HealthStatus) bool {
	return s.Status == lumi.HealthOK || s.Status == lumi.HealthWarn
}
