package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/lateness-tracker/models"
)

const (
	studentsTable = "students"
	recordsTable  = "lateness_records"
)

var studentColumns = []string{
	"student_id",
	"email",
	"password",
	"name",
	"ship",
	"level",
	"grade",
	"class",
	"created_at",
}

var recordColumns = []string{
	"id",
	"student_id",
	"reason",
	"minutes_late",
	"arrival_time",
}

// adminRecordColumns are aliased to the field names of [models.AdminRecord].
var adminRecordColumns = []string{
	"s.student_id",
	"s.name",
	"s.level",
	"s.grade",
	"s.class AS class_group",
	"s.ship",
	"l.arrival_time AS date",
	"l.minutes_late AS total_lateness",
	"l.reason",
}

func buildInsertStudentQuery(b sq.StatementBuilderType, student models.Student) (string, []any, error) {
	return b.Insert(studentsTable).
		Columns("student_id", "email", "password", "name", "ship", "level", "grade", "class").
		Values(
			student.StudentID,
			student.Email,
			student.PasswordHash,
			student.Name,
			student.Ship,
			student.Level,
			student.Grade,
			student.ClassGroup,
		).
		ToSql()
}

func buildSelectStudentByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(studentColumns...).
		From(studentsTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func buildInsertRecordQuery(b sq.StatementBuilderType, scan models.ScanRequest) (string, []any, error) {
	return b.Insert(recordsTable).
		Columns("student_id", "reason", "minutes_late").
		Values(scan.StudentID, scan.Reason, scan.MinutesLate).
		ToSql()
}

// buildSelectHistoryQuery orders newest first. Rows inserted within the same
// clock tick keep insertion order through the id tiebreak.
func buildSelectHistoryQuery(b sq.StatementBuilderType, studentID string) (string, []any, error) {
	return b.Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"student_id": studentID}).
		OrderBy("arrival_time DESC", "id DESC").
		ToSql()
}

func buildSelectAdminRecordsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(adminRecordColumns...).
		From(recordsTable + " l").
		Join(studentsTable + " s ON l.student_id = s.student_id").
		OrderBy("l.arrival_time DESC", "l.id DESC").
		ToSql()
}
