package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

// ── PostgreSQL ────────────────────────────────────────────────────────────────

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
		{name: "wrapped deadlock", err: fmt.Errorf("exec: %w", pgError(pgerrcode.DeadlockDetected)), want: Retryable},
		{name: "refused dial", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, want: Retryable},
		{name: "bad conn", err: driver.ErrBadConn, want: Retryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresErrorClassifier_Violation(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, UniqueViolation, c.Violation(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, ForeignKeyViolation, c.Violation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.Equal(t, NoViolation, c.Violation(pgError(pgerrcode.CheckViolation)))
	assert.Equal(t, NoViolation, c.Violation(errors.New("boom")))
}

// ── MySQL ─────────────────────────────────────────────────────────────────────

func TestMySQLErrorClassifier_Classify(t *testing.T) {
	c := NewMySQLErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "deadlock", err: &mysql.MySQLError{Number: 1213}, want: Retryable},
		{name: "lock wait timeout", err: &mysql.MySQLError{Number: 1205}, want: Retryable},
		{name: "too many connections", err: &mysql.MySQLError{Number: 1040}, want: Retryable},
		{name: "invalid conn", err: mysql.ErrInvalidConn, want: Retryable},
		{name: "duplicate entry", err: &mysql.MySQLError{Number: 1062}, want: NonRetryable},
		{name: "access denied", err: &mysql.MySQLError{Number: 1045}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestMySQLErrorClassifier_Violation(t *testing.T) {
	c := NewMySQLErrorClassifier()

	assert.Equal(t, UniqueViolation, c.Violation(&mysql.MySQLError{Number: 1062}))
	assert.Equal(t, ForeignKeyViolation, c.Violation(&mysql.MySQLError{Number: 1452}))
	assert.Equal(t, ForeignKeyViolation, c.Violation(&mysql.MySQLError{Number: 1216}))
	assert.Equal(t, NoViolation, c.Violation(&mysql.MySQLError{Number: 1045}))
	assert.Equal(t, NoViolation, c.Violation(errors.New("boom")))
}

// ── SQLite ────────────────────────────────────────────────────────────────────

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))

	assert.Equal(t, UniqueViolation, c.Violation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.Equal(t, UniqueViolation, c.Violation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.Equal(t, ForeignKeyViolation, c.Violation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}))
	assert.Equal(t, NoViolation, c.Violation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
}
