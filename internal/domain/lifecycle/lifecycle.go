// Package lifecycle centralizes timing constants for application start and stop,
// keeping servers and infrastructure hooks on the same clock.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single lifecycle step may take, such as
// draining an HTTP server or pinging the database on startup.
const DefaultTimeout = 10 * time.Second
