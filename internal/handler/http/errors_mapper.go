package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/lateness-tracker/internal/app"
	"github.com/MKhiriev/lateness-tracker/internal/service"
	"github.com/MKhiriev/lateness-tracker/internal/utils"
)

// errorMappings lists the service errors with a dedicated status and
// message. Anything else is a 500 carrying the error text.
var errorMappings = []struct {
	target  error
	status  int
	message string
}{
	{service.ErrStudentNotFound, http.StatusUnauthorized, app.MsgUserNotFound},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgWrongPassword},
	{service.ErrRegistrationFailed, http.StatusInternalServerError, app.MsgRegistrationFailed},
	{service.ErrForbidden, http.StatusForbidden, app.MsgAccessDenied},
}

func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func writeServiceError(w http.ResponseWriter, err error) {
	status, message := statusFromError(err)
	utils.WriteError(w, message, status)
}
