package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/MKhiriev/lateness-tracker/internal/logger"
)

func openMySQL(ctx context.Context, dsn string, log *logger.Logger) (*sql.DB, error) {
	cfg, err := mysqlConfig(dsn)
	if err != nil {
		log.Err(err).Str("func", "openMySQL").Msg("error parsing DSN")
		return nil, err
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		log.Err(err).Str("func", "openMySQL").Msg("error creating connector")
		return nil, fmt.Errorf("error creating mysql connector: %w", err)
	}
	conn := sql.OpenDB(connector)

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)
	conn.SetConnMaxLifetime(3 * time.Minute)

	if err = pingOrClose(ctx, conn); err != nil {
		log.Err(err).Str("func", "openMySQL").Msg("error connecting database (ping)")
		return nil, err
	}

	return conn, nil
}

// mysqlConfig parses dsn and forces the options the repositories rely on:
// DATETIME columns scanned into time.Time, in UTC.
func mysqlConfig(dsn string) (*mysql.Config, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("error parsing mysql DSN: %w", err)
	}

	cfg.ParseTime = true
	cfg.Loc = time.UTC

	return cfg, nil
}
