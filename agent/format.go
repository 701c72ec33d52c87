package agent

import (
	"fmt"

	"github.com/fwojciec/lumi"
)

// MsgUnclassified is returned when neither the rules nor the model produced a query.
const MsgUnclassified = "Sorry, I could not understand that search request."

// SearchOutcome reports the results of an executed query. The outcome is a
// search outcome even when nothing was found.
func SearchOutcome(query string, sort lumi.SortMode, results []*lumi.SearchResult) *lumi.AgentOutcome {
	if results == nil {
		results = []*lumi.SearchResult{}
	}
	var msg string
	if len(results) == 0 {
		msg = fmt.Sprintf("Search query '%s' (sort: %s) returned no results.", query, sort)
	} else {
		msg = fmt.Sprintf("Found %d files matching '%s'.", len(results), query)
	}
	return &lumi.AgentOutcome{
		Message:    msg,
		ActionType: lumi.ActionSearch,
		Results:    results,
	}
}

// SearchErrorOutcome reports a failed search as a chat message.
func SearchErrorOutcome(err error) *lumi.AgentOutcome {
	msg := lumi.ErrorMessage(err)
	if lumi.ErrorCode(err) == lumi.EINTERNAL {
		msg = err.Error()
	}
	return ChatOutcome("Search error: " + msg)
}

// ChatOutcome wraps a plain message.
func ChatOutcome(msg string) *lumi.AgentOutcome {
	return &lumi.AgentOutcome{
		Message:    msg,
		ActionType: lumi.ActionChat,
		Results:    []*lumi.SearchResult{},
	}
}
