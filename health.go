package lumi

import "context"

// Health status values reported by HealthChecker implementations.
const (
	HealthOK       = "OK"
	HealthWarn     = "WARN"
	HealthError    = "ERROR"
	HealthNotFound = "NOT_FOUND"
)

// HealthStatus describes the state of one collaborator.
type HealthStatus struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// HealthChecker reports whether a collaborator is usable.
type HealthChecker interface {
	// CheckHealth never fails; problems are reported through the status.
	CheckHealth(ctx context.Context) HealthStatus
}
