package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/lateness-tracker/internal/config"
	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/models"
)

var studentRowColumns = []string{"student_id", "email", "password", "name", "ship", "level", "grade", "class", "created_at"}

func testStudent() models.Student {
	return models.Student{
		StudentID:    "S1",
		Email:        "a@x.com",
		Password:     "pw123",
		PasswordHash: "$2a$10$digest",
		Name:         "A",
		Ship:         "1",
		Level:        "1",
		Grade:        "1",
		ClassGroup:   "1A",
	}
}

// ── CreateStudent ─────────────────────────────────────────────────────────────

// TestCreateStudent_Success verifies that the digest, not the plaintext, is
// written along with every student attribute.
func TestCreateStudent_Success(t *testing.T) {
	db, mock, conn := newPostgresTestDB(t)
	defer conn.Close()
	repo := NewStudentRepository(db, logger.Nop())
	s := testStudent()

	mock.ExpectExec(`INSERT INTO students \(student_id,email,password,name,ship,level,grade,class\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8\)`).
		WithArgs("S1", "a@x.com", "$2a$10$digest", "A", "1", "1", "1", "1A").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateStudent(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCreateStudent_MySQLPlaceholders verifies that the MySQL dialect uses ?
// placeholders.
func TestCreateStudent_MySQLPlaceholders(t *testing.T) {
	db, mock, conn := newTestDB(t, config.DriverMySQL)
	defer conn.Close()
	repo := NewStudentRepository(db, logger.Nop())

	mock.ExpectExec(`INSERT INTO students .* VALUES \(\?,\?,\?,\?,\?,\?,\?,\?\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateStudent(context.Background(), testStudent()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCreateStudent_UniqueViolation verifies that duplicate ids or emails map
// to ErrStudentAlreadyExists in every dialect.
func TestCreateStudent_UniqueViolation(t *testing.T) {
	tests := []struct {
		driver string
		err    error
	}{
		{driver: config.DriverPostgres, err: pgError(pgerrcode.UniqueViolation)},
		{driver: config.DriverMySQL, err: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			db, mock, conn := newTestDB(t, tt.driver)
			defer conn.Close()
			repo := NewStudentRepository(db, logger.Nop())

			mock.ExpectExec("INSERT INTO students").WillReturnError(tt.err)

			err := repo.CreateStudent(context.Background(), testStudent())
			assert.ErrorIs(t, err, ErrStudentAlreadyExists)
		})
	}
}

// TestCreateStudent_UnexpectedDBError verifies that other failures are
// wrapped and keep the driver message.
func TestCreateStudent_UnexpectedDBError(t *testing.T) {
	db, mock, conn := newPostgresTestDB(t)
	defer conn.Close()
	repo := NewStudentRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO students").WillReturnError(errors.New("db network error"))

	err := repo.CreateStudent(context.Background(), testStudent())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Contains(t, err.Error(), "db network error")
}

// ── FindStudentByEmail ────────────────────────────────────────────────────────

// TestFindStudentByEmail_Success verifies that every column, digest included,
// is scanned.
func TestFindStudentByEmail_Success(t *testing.T) {
	db, mock, conn := newPostgresTestDB(t)
	defer conn.Close()
	repo := NewStudentRepository(db, logger.Nop())
	created := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(studentRowColumns).
		AddRow("S1", "a@x.com", "$2a$10$digest", "A", "1", "1", "1", "1A", created)
	mock.ExpectQuery(`SELECT student_id, email, password, name, ship, level, grade, class, created_at FROM students WHERE email = \$1 LIMIT 1`).
		WithArgs("a@x.com").
		WillReturnRows(rows)

	s, err := repo.FindStudentByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)

	assert.Equal(t, "S1", s.StudentID)
	assert.Equal(t, "$2a$10$digest", s.PasswordHash)
	assert.Equal(t, "1A", s.ClassGroup)
	assert.Equal(t, created, s.CreatedAt)
	assert.Empty(t, s.Password)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestFindStudentByEmail_NotFound verifies that an empty result maps to
// ErrNoStudentWasFound.
func TestFindStudentByEmail_NotFound(t *testing.T) {
	db, mock, conn := newPostgresTestDB(t)
	defer conn.Close()
	repo := NewStudentRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .* FROM students").
		WithArgs("nobody@x.com").
		WillReturnRows(sqlmock.NewRows(studentRowColumns))

	_, err := repo.FindStudentByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrNoStudentWasFound)
}

// TestFindStudentByEmail_QueryError verifies that driver errors are wrapped.
func TestFindStudentByEmail_QueryError(t *testing.T) {
	db, mock, conn := newPostgresTestDB(t)
	defer conn.Close()
	repo := NewStudentRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT .* FROM students").WillReturnError(errors.New("connection reset"))

	_, err := repo.FindStudentByEmail(context.Background(), "a@x.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoStudentWasFound)
	assert.Contains(t, err.Error(), "connection reset")
}
