package main

import (
	lumihttp "github.com/fwojciec/lumi/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := lumihttp.NewServer(c.Addr, deps.Logger)
	s.Agent = deps.Agent
	s.Asker = deps.Asker
	s.Searcher = deps.Searcher
	s.Documents = deps.Documents
	s.ModelHealth = deps.ModelHealth
	s.SearchHealth = deps.SearchHealth
	s.RateLimit = c.RateLimit
	s.SearchResults = c.SearchResults

	return s.ListenAndServe(deps.Ctx)
}
