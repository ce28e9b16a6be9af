package http

import (
	"net/http"

	"github.com/MKhiriev/lateness-tracker/internal/app"
	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/internal/utils"
)

// requireAdmin guards the administrative views with the configured
// Authorizer. A nil Authorizer lets everyone through.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorizer := h.services.Authorizer
		if authorizer == nil {
			next.ServeHTTP(w, r)
			return
		}

		if err := authorizer.AuthorizeAdmin(r.Context()); err != nil {
			logger.FromRequest(r).Warn().Err(err).Msg("admin access refused")
			utils.WriteError(w, app.MsgAccessDenied, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
