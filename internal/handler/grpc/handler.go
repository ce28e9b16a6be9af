package grpc

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health-checked service name of the lateness tracker.
// Probes may also ask for the empty name, which reports the same status.
const ServiceName = "lateness.Tracker"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1.Health service. The status starts
// as SERVING and is switched by the database health worker through
// [Handler.SetServing].
type Handler struct {
	health  *health.Server
	serving atomic.Bool
	stopped atomic.Bool

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health service reports SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(true)

	return h
}

// Register attaches the handler's services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// SetServing publishes the overall and per-service health status. Repeated
// calls with the same value are not logged.
func (h *Handler) SetServing(serving bool) {
	if h.stopped.Load() {
		return
	}

	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)

	if h.serving.Swap(serving) != serving {
		h.logger.Info().Str("status", status.String()).Msg("health status changed")
	}
}

// Serving reports the last status published by SetServing.
func (h *Handler) Serving() bool {
	return h.serving.Load()
}

// Shutdown switches every service to NOT_SERVING and ignores later updates,
// so that clients watching the status drain before the server stops.
func (h *Handler) Shutdown() {
	h.stopped.Store(true)
	h.serving.Store(false)
	h.health.Shutdown()
}

// Check answers a health probe in-process. It is what the registered
// service returns to remote callers.
func (h *Handler) Check(ctx context.Context, service string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	resp, err := h.health.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}
