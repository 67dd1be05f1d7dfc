// Package lifecycle holds shared constants for process lifecycle handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and store clients.
const DefaultTimeout = 10 * time.Second
