package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/models"
)

// studentRepository is the SQL-backed implementation of [StudentRepository].
// It handles account creation and lookup against the "students" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type studentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStudentRepository constructs a [StudentRepository] backed by the
// provided database connection and logger.
func NewStudentRepository(db *DB, logger *logger.Logger) StudentRepository {
	logger.Debug().Msg("creating student repository")
	return &studentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateStudent inserts a new student row. The digest must already be set;
// the row is written in a single statement, so a failure leaves nothing
// behind.
//
// Error handling:
//   - unique violation on student_id or email → [ErrStudentAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *studentRepository) CreateStudent(ctx context.Context, student models.Student) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertStudentQuery(r.db.builder, student)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.CreateStudent").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*studentRepository.CreateStudent").Msg("error inserting student")

		switch r.db.errorClassificator.Violation(err) {
		case UniqueViolation:
			return ErrStudentAlreadyExists
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// FindStudentByEmail retrieves the student whose email matches, including
// the stored digest.
//
// Error handling:
//   - no matching row → [ErrNoStudentWasFound].
//   - any other driver-level error → wrapped [ErrScanningRow].
func (r *studentRepository) FindStudentByEmail(ctx context.Context, email string) (models.Student, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectStudentByEmailQuery(r.db.builder, email)
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.FindStudentByEmail").Msg("error building query")
		return models.Student{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Student
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&found.StudentID,
		&found.Email,
		&found.PasswordHash,
		&found.Name,
		&found.Ship,
		&found.Level,
		&found.Grade,
		&found.ClassGroup,
		&found.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Student{}, ErrNoStudentWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.FindStudentByEmail").Msg("error scanning student")
		return models.Student{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}
