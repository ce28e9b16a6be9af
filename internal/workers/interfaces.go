// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled. Workers are started concurrently by
// [Workers.Run], so an implementation must not rely on the others.
type Worker interface {
	Run(ctx context.Context)
}

// Pinger is a dependency whose liveness can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthReporter receives the aggregated probe result.
type HealthReporter interface {
	SetServing(serving bool)
}
