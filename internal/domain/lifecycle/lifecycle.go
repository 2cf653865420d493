// Package lifecycle holds shared start/stop timing constants.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds OnStart/OnStop hooks.
	DefaultTimeout = 10 * time.Second

	// ShutdownGrace bounds the final snapshot flush when the process stops.
	ShutdownGrace = 3 * time.Second
)
