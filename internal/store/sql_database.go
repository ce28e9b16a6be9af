// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"

	"github.com/MKhiriev/lateness-tracker/internal/config"
	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/migrations"
)

// DB is the process-wide connection pool together with everything the
// repositories need to speak its dialect.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// newDB wraps an opened pool for driver.
func newDB(conn *sql.DB, driver string, log *logger.Logger) (*DB, error) {
	placeholder, classifier, err := dialect(driver)
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}, nil
}

// dialect returns the placeholder format and error classifier of driver.
// Postgres uses $n placeholders, MySQL and SQLite use ?.
func dialect(driver string) (sq.PlaceholderFormat, ErrorClassificator, error) {
	switch driver {
	case config.DriverPostgres:
		return sq.Dollar, NewPostgresErrorClassifier(), nil
	case config.DriverMySQL:
		return sq.Question, NewMySQLErrorClassifier(), nil
	case config.DriverSQLite:
		return sq.Question, NewSQLiteErrorClassifier(), nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// NewDB opens a pool for cfg.Driver and pings it. Retryable failures (the
// database still starting, a refused connection) are retried with
// exponential backoff for up to cfg.ConnectTimeout.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	open, err := opener(cfg.Driver)
	if err != nil {
		return nil, err
	}

	_, classifier, err := dialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 5 * time.Second
	policy.MaxElapsedTime = cfg.ConnectTimeout
	if policy.MaxElapsedTime <= 0 {
		policy.MaxElapsedTime = config.DefaultConnectTimeout
	}

	var conn *sql.DB
	operation := func() error {
		c, err := open(ctx, cfg.DSN, log)
		if err != nil {
			if classifier.Classify(err) == Retryable {
				return err
			}
			return backoff.Permanent(err)
		}
		conn = c
		return nil
	}

	notify := func(err error, next time.Duration) {
		log.Warn().Err(err).Str("driver", cfg.Driver).Dur("retry_in", next).
			Msg("database is not reachable yet")
	}

	if err = backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify); err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error connecting database")
		return nil, fmt.Errorf("error connecting %s database: %w", cfg.Driver, err)
	}
	log.Info().Str("func", "NewDB").Str("driver", cfg.Driver).Msg("connected to database successfully")

	return newDB(conn, cfg.Driver, log)
}

type openFunc func(ctx context.Context, dsn string, log *logger.Logger) (*sql.DB, error)

func opener(driver string) (openFunc, error) {
	switch driver {
	case config.DriverPostgres:
		return openPostgres, nil
	case config.DriverMySQL:
		return openMySQL, nil
	case config.DriverSQLite:
		return openSQLite, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// pingOrClose pings a freshly opened pool and closes it when the ping fails,
// so a retry never leaks the previous attempt's pool.
func pingOrClose(ctx context.Context, conn *sql.DB) error {
	if err := conn.PingContext(ctx); err != nil {
		return errors.Join(err, conn.Close())
	}

	return nil
}

// Driver returns the SQL driver name the pool was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations of the pool's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
