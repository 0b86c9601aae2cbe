package contracts

import "context"

// HealthChecker reports whether one backing dependency is reachable.
type HealthChecker interface {
	Name() string
	Ping(ctx context.Context) error
}
