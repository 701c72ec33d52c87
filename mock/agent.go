package mock

import (
	"context"

	"github.com/fwojciec/lumi"
)

var _ lumi.Agent = (*Agent)(nil)

// Agent is a mock implementation of lumi.Agent.
type Agent struct {
	HandleFn func(ctx context.Context, userQuery string) (*lumi.AgentOutcome, error)
}

func (a *Agent) Handle(ctx context.Context, userQuery string) (*lumi.AgentOutcome, error) {
	return a.HandleFn(ctx, userQuery)
}
