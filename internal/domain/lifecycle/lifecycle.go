// Package lifecycle holds constants shared by components that participate
// in application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of
// infrastructure components (database pings, HTTP server drain).
const DefaultTimeout = 10 * time.Second
