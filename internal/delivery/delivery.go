// Package delivery defines the contract every transport (HTTP, workers) implements.
package delivery

import "context"

// Delivery is a long-running entry point such as an HTTP server.
// Implementations are collected into an Fx value group and started together.
type Delivery interface {
	Serve(ctx context.Context) error
}
