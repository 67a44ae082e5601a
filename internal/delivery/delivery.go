// Package delivery holds the transports that expose the storefront.
package delivery

import "context"

// Delivery is a transport started by the application, such as the HTTP API.
type Delivery interface {
	// Serve blocks until the transport stops.
	Serve(ctx context.Context) error
}
