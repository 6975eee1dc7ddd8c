package ports

import "context"

// HealthChecker reports the health of an external dependency. The
// deep /health endpoint fans out over all registered checkers.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "postgresql", "redis").
	Name() string
}
