package mock

import (
	"context"

	"github.com/fwojciec/lumi"
)

var _ lumi.HealthChecker = (*HealthChecker)(nil)

// HealthChecker is a mock implementation of lumi.HealthChecker.
type HealthChecker struct {
	CheckHealthFn func(ctx context.Context) lumi.HealthStatus
}

func (h *HealthChecker) CheckHealth(ctx context.Context) lumi.HealthStatus {
	return h.CheckHealthFn(ctx)
}
