// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and stop operations such as the HTTP
// server shutdown and the initial database ping.
const DefaultTimeout = 10 * time.Second
