// Package delivery defines the contract every transport adapter satisfies.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) managed by the fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}
