package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/lateness-tracker/internal/logger"
)

func openPostgres(ctx context.Context, dsn string, log *logger.Logger) (*sql.DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "openPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	if err = pingOrClose(ctx, conn); err != nil {
		log.Err(err).Str("func", "openPostgres").Msg("error connecting database (ping)")
		return nil, err
	}

	return conn, nil
}
