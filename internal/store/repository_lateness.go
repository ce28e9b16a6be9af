package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/models"
)

// latenessRepository is the SQL-backed implementation of
// [LatenessRepository].
type latenessRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLatenessRepository constructs a [LatenessRepository] backed by db.
func NewLatenessRepository(db *DB, logger *logger.Logger) LatenessRepository {
	logger.Debug().Msg("creating lateness repository")
	return &latenessRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRecord inserts one lateness record. The arrival time is assigned by
// the database. A student_id with no matching student yields
// [ErrUnknownStudent].
func (r *latenessRepository) CreateRecord(ctx context.Context, scan models.ScanRequest) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRecordQuery(r.db.builder, scan)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*latenessRepository.CreateRecord").Str("student_id", scan.StudentID).
			Msg("error inserting lateness record")

		switch r.db.errorClassificator.Violation(err) {
		case ForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrUnknownStudent, scan.StudentID)
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// ListByStudent implements [LatenessRepository]. The result is never nil.
func (r *latenessRepository) ListByStudent(ctx context.Context, studentID string) ([]models.LatenessRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectHistoryQuery(r.db.builder, studentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*latenessRepository.ListByStudent").Msg("error selecting history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.LatenessRecord, 0)
	for rows.Next() {
		var rec models.LatenessRecord
		if err = rows.Scan(&rec.ID, &rec.StudentID, &rec.Reason, &rec.MinutesLate, &rec.ArrivalTime); err != nil {
			log.Err(err).Str("func", "*latenessRepository.ListByStudent").Msg("error scanning history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// ListAdminRecords implements [LatenessRepository]. The result is never nil.
func (r *latenessRepository) ListAdminRecords(ctx context.Context) ([]models.AdminRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAdminRecordsQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*latenessRepository.ListAdminRecords").Msg("error selecting admin records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.AdminRecord, 0)
	for rows.Next() {
		var rec models.AdminRecord
		err = rows.Scan(
			&rec.StudentID,
			&rec.Name,
			&rec.Level,
			&rec.Grade,
			&rec.ClassGroup,
			&rec.Ship,
			&rec.Date,
			&rec.TotalLateness,
			&rec.Reason,
		)
		if err != nil {
			log.Err(err).Str("func", "*latenessRepository.ListAdminRecords").Msg("error scanning admin row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
