package service

import (
	"context"

	"github.com/MKhiriev/lateness-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers students and checks their credentials.
type AuthService interface {
	// Register hashes student.Password and persists the account. The
	// plaintext never reaches storage.
	Register(ctx context.Context, student models.Student) error

	// Login looks up the student by email and verifies the password. It
	// returns ErrStudentNotFound or ErrWrongPassword for the two
	// authentication failures, and a view without the digest on success.
	Login(ctx context.Context, req models.LoginRequest) (models.StudentView, error)
}

// RecordService records lateness scans and serves history views.
type RecordService interface {
	RecordScan(ctx context.Context, scan models.ScanRequest) error
	History(ctx context.Context, studentID string) ([]models.LatenessRecord, error)
	AdminRecords(ctx context.Context) ([]models.AdminRecord, error)
}

// AppInfoService exposes build information about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Authorizer decides whether the caller carried by ctx may read the
// administrative views.
type Authorizer interface {
	AuthorizeAdmin(ctx context.Context) error
}
