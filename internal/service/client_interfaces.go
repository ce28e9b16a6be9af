package service

import (
	"context"

	"github.com/MKhiriev/lateness-tracker/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/kiosk_service_mock.go -package=mock

// KioskService is the client-side contract of a scanning station. One
// student at a time logs in, records lateness and browses their history.
type KioskService interface {
	// Register creates a student account on the server. It does not log the
	// student in.
	Register(ctx context.Context, student models.Student) error

	// Login authenticates against the server and makes the student current.
	// Returns ErrStudentNotFound or ErrWrongPassword for rejected credentials.
	Login(ctx context.Context, email, password string) (models.StudentView, error)

	// Logout forgets the current student.
	Logout()

	// Current returns the logged-in student, if any.
	Current() (models.StudentView, bool)

	// RecordLateness records a scan for the current student.
	RecordLateness(ctx context.Context, reason string, minutesLate int) error

	// History returns the current student's records, newest first.
	History(ctx context.Context) ([]models.LatenessRecord, error)

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
