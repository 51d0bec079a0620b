// Package delivery holds the inbound adapters of the service: the API server and the sweeper worker.
package delivery

import "context"

// Delivery is a long-running inbound server started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
