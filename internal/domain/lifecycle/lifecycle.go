// Package lifecycle holds shared values for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks such as the database ping and server shutdown.
const DefaultTimeout = 10 * time.Second
