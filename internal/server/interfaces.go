package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract of the application server.
type Server interface {
	// Run binds every configured transport and serves until ctx is done or
	// a transport fails, then shuts down. It returns the first serve or bind
	// error, or nil on a requested shutdown.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every started transport within ctx.
	Shutdown(ctx context.Context) error
}

// transport is one listening server managed by [Server].
type transport interface {
	name() string
	listen() error
	addr() net.Addr
	serve() error
	// release closes a bound listener that never started serving.
	release() error
	shutdown(ctx context.Context) error
}
