// Package delivery defines the contract every transport front end of the
// service implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) started at boot and
// stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
