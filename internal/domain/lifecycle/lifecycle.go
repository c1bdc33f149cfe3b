// Package lifecycle holds shared process lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown steps (server drain,
// database ping and close).
const DefaultTimeout = 10 * time.Second
