// Package delivery defines the transport-agnostic contract every
// delivery mechanism (HTTP, future gRPC, ...) fulfills.
package delivery

import "context"

// Delivery is a serving endpoint started by the application runtime.
type Delivery interface {
	// Serve blocks, serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
