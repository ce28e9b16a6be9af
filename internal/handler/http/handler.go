package http

import (
	"github.com/MKhiriev/lateness-tracker/internal/config"
	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/internal/service"
	"github.com/MKhiriev/lateness-tracker/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	metrics *httpMetrics
	traceID *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Str("static_dir", cfg.StaticDir).Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  newHTTPMetrics(),
		traceID:  utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
