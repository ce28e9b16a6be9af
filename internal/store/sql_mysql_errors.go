package store

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers the store reacts to.
// See https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html
const (
	mysqlErrDupEntry           = 1062
	mysqlErrNoReferencedRow    = 1216
	mysqlErrNoReferencedRow2   = 1452
	mysqlErrLockWaitTimeout    = 1205
	mysqlErrLockDeadlock       = 1213
	mysqlErrTooManyConnections = 1040
	mysqlErrServerShutdown     = 1053
)

// MySQLErrorClassifier implements [ErrorClassificator] for MySQL and MariaDB.
type MySQLErrorClassifier struct{}

// NewMySQLErrorClassifier constructs a [MySQLErrorClassifier].
func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Deadlocks, lock wait timeouts,
// connection limits, server shutdowns and broken connections are
// [Retryable].
func (c *MySQLErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	if errors.Is(err, mysql.ErrInvalidConn) || isConnectionError(err) {
		return Retryable
	}

	switch mysqlErrorNumber(err) {
	case mysqlErrLockDeadlock,
		mysqlErrLockWaitTimeout,
		mysqlErrTooManyConnections,
		mysqlErrServerShutdown:
		return Retryable
	}

	return NonRetryable
}

// Violation implements [ErrorClassificator].
func (c *MySQLErrorClassifier) Violation(err error) ConstraintViolation {
	switch mysqlErrorNumber(err) {
	case mysqlErrDupEntry:
		return UniqueViolation
	case mysqlErrNoReferencedRow, mysqlErrNoReferencedRow2:
		return ForeignKeyViolation
	default:
		return NoViolation
	}
}

func mysqlErrorNumber(err error) uint16 {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number
	}

	return 0
}
