package lumi

import "context"

// ActionType tells the client how to present an AgentOutcome.
type ActionType string

// ActionType constants.
const (
	ActionSearch ActionType = "search"
	ActionChat   ActionType = "chat"
)

// AgentOutcome is the reply to a natural language file-search request.
type AgentOutcome struct {
	Message    string          `json:"message"`
	ActionType ActionType      `json:"action_type"`
	Results    []*SearchResult `json:"results"`
}

// Agent turns free-form requests into file searches.
type Agent interface {
	// Handle answers a user request. Search failures and unrecognized requests
	// are reported through a chat outcome; only a failure of the model used to
	// translate the request is returned as an error.
	Handle(ctx context.Context, userQuery string) (*AgentOutcome, error)
}
