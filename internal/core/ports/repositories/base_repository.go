package repositories

import (
	"context"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	// Ping verifies the database connection.
	Ping(ctx context.Context) error
}
