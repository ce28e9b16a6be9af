package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/lateness-tracker/internal/app"
	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/internal/utils"
	"github.com/MKhiriev/lateness-tracker/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var student models.Student
	if err := json.NewDecoder(r.Body).Decode(&student); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgRegistrationFailed, http.StatusInternalServerError)
		return
	}

	if err := h.services.AuthService.Register(ctx, student); err != nil {
		log.Err(err).Str("student_id", student.StudentID).Msg("registration failed")
		utils.WriteError(w, app.MsgRegistrationFailed, http.StatusInternalServerError)
		return
	}

	log.Info().Str("student_id", student.StudentID).Msg("student registered")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgStudentCreated}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeServiceError(w, err)
		return
	}

	student, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("login failed")
		writeServiceError(w, err)
		return
	}

	log.Debug().Str("student_id", student.StudentID).Msg("student successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{Message: app.MsgLoginSuccessful, User: student}, http.StatusOK)
}
