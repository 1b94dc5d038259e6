// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence of users, rooms and bookings on top
// of database/sql. SQLite, PostgreSQL and MySQL are supported; the driver is
// chosen by configuration and queries are rendered with squirrel using the
// placeholder format of that driver.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/migrations"
)

// ErrorClassificator maps driver-specific errors onto the conditions the
// repositories care about.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

// ErrorClassification indicates whether a failed database operation should
// be retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss, a deadlock rollback or a
	// busy SQLite file).
	Retryable
)

const (
	maxTxAttempts  = 3
	txRetryBackoff = 50 * time.Millisecond
)

// DB wraps *sql.DB with the driver name, a squirrel builder using the
// driver's placeholder format, and the driver's error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func newDB(conn *sql.DB, driver string, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == config.DriverPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations for the DB's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the database driver name.
func (db *DB) Driver() string {
	return db.driver
}

// insertReturningID executes insert on q and returns the generated id.
// PostgreSQL has no LastInsertId, so a RETURNING clause is used there.
func (db *DB) insertReturningID(ctx context.Context, q queryer, insert sq.InsertBuilder) (int64, error) {
	if db.driver == config.DriverPostgres {
		query, args, err := insert.Suffix("RETURNING id").ToSql()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var id int64
		if err := q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// inTx runs fn inside a transaction, committing on success and rolling back
// on error. Transactions failing with a retryable driver error are retried
// a bounded number of times; domain errors are returned immediately.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil || !db.isRetryable(err) {
			return err
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("retrying transaction")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * txRetryBackoff):
		}
	}

	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (db *DB) isRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}

	return db.errorClassificator.Classify(err) == Retryable
}

func (db *DB) isUniqueViolation(err error) bool {
	if db.errorClassificator == nil {
		return false
	}

	return db.errorClassificator.IsUniqueViolation(err)
}
