// Package delivery contains the transports that expose the usecases.
package delivery

import "context"

// Delivery is a long-running transport started by the application after Fx wiring.
type Delivery interface {
	Serve(ctx context.Context) error
}
