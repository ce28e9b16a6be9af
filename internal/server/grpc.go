package server

import (
	"context"
	"errors"
	"net"

	"github.com/MKhiriev/lateness-tracker/internal/config"
	myGRPC "github.com/MKhiriev/lateness-tracker/internal/handler/grpc"
	"github.com/MKhiriev/lateness-tracker/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) name() string { return "grpc" }

func (g *grpcServer) listen() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}
	g.gRPCNetListener = listener
	return nil
}

func (g *grpcServer) addr() net.Addr {
	return g.gRPCNetListener.Addr()
}

func (g *grpcServer) serve() error {
	if err := g.server.Serve(g.gRPCNetListener); !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (g *grpcServer) release() error {
	return g.gRPCNetListener.Close()
}

// shutdown flips health to NOT_SERVING first so probes stop routing traffic,
// then drains open RPCs. A ctx that expires first forces the stop.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
