// Package slog provides log/slog decorators for lumi services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lumi"
)

// Ensure LoggingAsker implements lumi.Asker.
var _ lumi.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging.
type LoggingAsker struct {
	next   lumi.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next lumi.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped Asker and logs prompt and reply sizes.
func (a *LoggingAsker) Ask(ctx context.Context, prompt string) (reply string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("ask",
			"prompt_chars", len([]rune(prompt)),
			"reply_chars", len([]rune(reply)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, prompt)
}
