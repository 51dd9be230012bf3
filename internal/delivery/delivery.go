// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a transport server (HTTP today) managed by the process lifecycle.
type Delivery interface {
	// Serve blocks, accepting requests until the server is shut down.
	Serve(ctx context.Context) error
}
