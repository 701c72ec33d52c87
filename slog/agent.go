package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lumi"
)

// Ensure LoggingAgent implements lumi.Agent.
var _ lumi.Agent = (*LoggingAgent)(nil)

// LoggingAgent wraps an Agent with logging.
type LoggingAgent struct {
	next   lumi.Agent
	logger *slog.Logger
}

// NewLoggingAgent creates a new LoggingAgent.
func NewLoggingAgent(next lumi.Agent, logger *slog.Logger) *LoggingAgent {
	return &LoggingAgent{next: next, logger: logger}
}

// Handle delegates to the wrapped Agent and logs the outcome.
func (a *LoggingAgent) Handle(ctx context.Context, userQuery string) (outcome *lumi.AgentOutcome, err error) {
	defer func(begin time.Time) {
		var action lumi.ActionType
		var count int
		if outcome != nil {
			action, count = outcome.ActionType, len(outcome.Results)
		}
		a.logger.Info("agent",
			"query", userQuery,
			"action", action,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Handle(ctx, userQuery)
}
