package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/lateness-tracker/internal/app"
	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/internal/utils"
	"github.com/MKhiriev/lateness-tracker/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var scan models.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&scan); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeServiceError(w, err)
		return
	}

	if err := h.services.RecordService.RecordScan(ctx, scan); err != nil {
		log.Err(err).Str("student_id", scan.StudentID).Msg("recording lateness failed")
		writeServiceError(w, err)
		return
	}

	log.Info().Str("student_id", scan.StudentID).Int("minutes_late", scan.MinutesLate).Msg("lateness recorded")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAttendanceRecorded}, http.StatusOK)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	studentID := chi.URLParam(r, "student_id")

	records, err := h.services.RecordService.History(ctx, studentID)
	if err != nil {
		log.Err(err).Str("student_id", studentID).Msg("loading history failed")
		writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []models.LatenessRecord{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) adminRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	records, err := h.services.RecordService.AdminRecords(ctx)
	if err != nil {
		log.Err(err).Msg("loading admin records failed")
		writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []models.AdminRecord{}
	}

	utils.WriteJSON(w, records, http.StatusOK)
}
