// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as startup pings and
// graceful shutdown.
const DefaultTimeout = 10 * time.Second
