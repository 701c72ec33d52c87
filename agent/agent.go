package agent

import (
	"context"
	"strings"

	"github.com/fwojciec/lumi"
)

// MaxResults caps the number of results requested for agent searches.
const MaxResults = 20

// Ensure Agent implements lumi.Agent at compile time.
var _ lumi.Agent = (*Agent)(nil)

// Agent classifies requests with Rules and falls back to Asker when no rule
// matches. It holds no per-request state and is safe for concurrent use as
// long as its collaborators are.
type Agent struct {
	Searcher lumi.Searcher
	Asker    lumi.Asker

	// Rules defaults to the package Rules when nil.
	Rules []Rule
}

// New returns an Agent using the default rule table.
func New(searcher lumi.Searcher, asker lumi.Asker) *Agent {
	return &Agent{Searcher: searcher, Asker: asker}
}

// Handle answers a natural language file-search request.
func (a *Agent) Handle(ctx context.Context, userQuery string) (*lumi.AgentOutcome, error) {
	userQuery = strings.TrimSpace(userQuery)

	query, sort, err := a.Translate(ctx, userQuery)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return ChatOutcome(MsgUnclassified), nil
	}

	results, err := a.Searcher.Search(ctx, query, MaxResults, sort)
	if err != nil {
		return SearchErrorOutcome(err), nil
	}
	return SearchOutcome(query, sort, results), nil
}

// Translate returns the sanitized search query and sort order for userQuery.
// An empty query means the request could not be classified. Errors come only
// from the model call made when no rule matches.
func (a *Agent) Translate(ctx context.Context, userQuery string) (string, lumi.SortMode, error) {
	rules := a.Rules
	if rules == nil {
		rules = Rules
	}

	if intent, ok := Classify(rules, userQuery, ExtractPath(userQuery)); ok {
		return Sanitize(intent.Query), intent.Sort, nil
	}

	reply, err := a.Asker.Ask(ctx, BuildFallbackPrompt(userQuery))
	if err != nil {
		return "", lumi.SortDefault, err
	}
	query, ok := ParseReply(reply)
	if !ok {
		return "", lumi.SortDefault, nil
	}
	return Sanitize(query), lumi.SortDefault, nil
}

// Sanitize removes backticks left over from model formatting and trims the result.
func Sanitize(query string) string {
	return strings.TrimSpace(strings.ReplaceAll(query, "`", ""))
}
