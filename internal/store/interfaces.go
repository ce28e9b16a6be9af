package store

import (
	"context"

	"github.com/MKhiriev/lateness-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StudentRepository persists student accounts.
type StudentRepository interface {
	// CreateStudent inserts a student whose PasswordHash is already set.
	CreateStudent(ctx context.Context, student models.Student) error
	// FindStudentByEmail returns the single student registered with email,
	// digest included.
	FindStudentByEmail(ctx context.Context, email string) (models.Student, error)
}

// LatenessRepository persists and lists lateness records.
type LatenessRepository interface {
	CreateRecord(ctx context.Context, scan models.ScanRequest) error
	// ListByStudent returns the records of one student, newest first.
	ListByStudent(ctx context.Context, studentID string) ([]models.LatenessRecord, error)
	// ListAdminRecords returns every record joined with its student, newest
	// first.
	ListAdminRecords(ctx context.Context) ([]models.AdminRecord, error)
}

// ErrorClassificator inspects driver errors of one SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification
	// Violation reports which integrity constraint, if any, err violates.
	Violation(err error) ConstraintViolation
}
