package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// ProbeHealthChecker reports healthy while its probe succeeds.
type ProbeHealthChecker struct {
	probe func(ctx context.Context) error
}

func NewProbeHealthChecker(probe func(ctx context.Context) error) *ProbeHealthChecker {
	return &ProbeHealthChecker{probe: probe}
}

func (hc *ProbeHealthChecker) Healthy(ctx context.Context) bool {
	if err := ctx.Err(); err != nil {
		return false
	}
	return hc.probe(ctx) == nil
}
