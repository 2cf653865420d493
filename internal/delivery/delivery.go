// Package delivery defines the inbound adapters of the application.
package delivery

import "context"

// Delivery is a server started by the application after dependency wiring.
type Delivery interface {
	Serve(ctx context.Context) error
}
