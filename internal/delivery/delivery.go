// Package delivery contains the inbound adapters that expose the use cases.
package delivery

import "context"

// Delivery is a long-running inbound server started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
