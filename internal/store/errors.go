package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStudentAlreadyExists is returned when registration collides with an
	// existing student_id or email.
	ErrStudentAlreadyExists = errors.New("student already exists")

	// ErrNoStudentWasFound is returned when no student matches the lookup.
	ErrNoStudentWasFound = errors.New("no student was found")

	// ErrUnknownStudent is returned when a lateness record references a
	// student_id that is not registered.
	ErrUnknownStudent = errors.New("unknown student")

	// ErrUnsupportedDriver is returned by [NewDB] for a driver it cannot open.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
