package mock

import (
	"context"

	"github.com/fwojciec/lumi"
)

var _ lumi.Asker = (*Asker)(nil)

// Asker is a mock implementation of lumi.Asker.
type Asker struct {
	AskFn func(ctx context.Context, prompt string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, prompt string) (string, error) {
	return a.AskFn(ctx, prompt)
}
