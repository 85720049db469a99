// Package lifecycle holds shared timeouts for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds pings on start and graceful shutdown on stop.
const DefaultTimeout = 10 * time.Second
