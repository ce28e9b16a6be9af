package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/lateness-tracker/internal/config"
	"github.com/MKhiriev/lateness-tracker/internal/handler"
	"github.com/MKhiriev/lateness-tracker/internal/logger"
)

// ShutdownTimeout bounds the graceful shutdown started by a cancelled Run.
const ShutdownTimeout = 10 * time.Second

type server struct {
	transports []transport
	started    []transport

	// ready is closed once every transport is bound.
	ready chan struct{}

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		ready:  make(chan struct{}),
		logger: logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.transports = append(servers.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.transports = append(servers.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) Run(ctx context.Context) error {
	if len(s.transports) == 0 {
		return errNoServersToRun
	}

	for _, t := range s.transports {
		if err := t.listen(); err != nil {
			errs := []error{fmt.Errorf("error binding %s server: %w", t.name(), err)}
			for _, bound := range s.started {
				errs = append(errs, bound.release())
			}
			s.started = nil

			return errors.Join(errs...)
		}
		s.started = append(s.started, t)
	}

	serveErrs := make(chan error, len(s.started))
	for _, t := range s.started {
		s.logger.Info().Str("transport", t.name()).Str("address", t.addr().String()).Msg("launching server")
		go func() {
			if err := t.serve(); err != nil {
				serveErrs <- fmt.Errorf("%s server: %w", t.name(), err)
			}
		}()
	}
	close(s.ready)

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-serveErrs:
		s.logger.Err(runErr).Msg("server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

// Shutdown stops the started transports in reverse start order.
func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(s.started) - 1; i >= 0; i-- {
		t := s.started[i]
		if err := t.shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("error shutting down %s server: %w", t.name(), err))
		}
	}
	s.started = nil

	return errors.Join(errs...)
}
