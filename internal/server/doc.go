// Package server wires and runs the application's transport servers.
//
// It binds the HTTP API and the optional gRPC health endpoint, serves both
// until the supplied context is cancelled or one of them fails, and then
// shuts every started transport down gracefully.
package server
