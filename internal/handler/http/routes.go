package http

import (
	"net/http"

	"github.com/MKhiriev/lateness-tracker/internal/app"
	"github.com/MKhiriev/lateness-tracker/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withRecover,
		cors.Handler(h.corsOptions()),
		middleware.Compress(5),
		withGZip,
	)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/scan", h.scan)
		r.Get("/history/{student_id}", h.history)
		r.With(h.requireAdmin).Get("/admin/records", h.adminRecords)
		r.Get("/version", h.getServerVersion)

		// unknown api paths and methods never fall through to the SPA
		r.NotFound(apiRouteNotFound)
		r.MethodNotAllowed(apiRouteNotFound)
	})

	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	router.NotFound(h.serveSPA)
	router.MethodNotAllowed(h.serveSPA)

	return router
}

func (h *Handler) corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}
}

func apiRouteNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgAPIRouteNotFound, http.StatusNotFound)
}
