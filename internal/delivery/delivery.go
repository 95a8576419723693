// Package delivery holds the long-running entry points of the service.
package delivery

import "context"

// Delivery is a server or background loop started by the application. Serve
// blocks until the delivery stops; shutdown is driven by fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
