// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is a transport-facing server started by the application
// lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
