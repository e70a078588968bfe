// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a serving surface (currently only HTTP) started by the
// application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
