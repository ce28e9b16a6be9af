package store

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/lateness-tracker/internal/config"
	"github.com/MKhiriev/lateness-tracker/internal/logger"
)

func newTestDB(t *testing.T, driver string) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := newDB(conn, driver, logger.Nop())
	require.NoError(t, err)

	return db, mock, conn
}

func newPostgresTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	return newTestDB(t, config.DriverPostgres)
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
