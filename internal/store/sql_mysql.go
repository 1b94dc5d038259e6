// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
)

// MySQL server error numbers used by [MySQLErrorClassifier].
const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
)

// NewConnectMySQL opens a pooled connection to MySQL.
func NewConnectMySQL(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	mysqlCfg, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("invalid mysql DSN")
		return nil, fmt.Errorf("invalid mysql DSN: %w", err)
	}
	mysqlCfg.ParseTime = true

	connector, err := mysql.NewConnector(mysqlCfg)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error creating mysql connector")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}
	conn := sql.OpenDB(connector)

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(25)
	conn.SetConnMaxLifetime(5 * time.Minute)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectMySQL").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectMySQL").Msg("connected to database successfully")

	return newDB(conn, config.DriverMySQL, NewMySQLErrorClassifier(), log), nil
}

// MySQLErrorClassifier implements [ErrorClassificator] for go-sql-driver/mysql.
type MySQLErrorClassifier struct{}

func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

// Classify reports deadlocks, lock wait timeouts and broken connections as
// retryable.
func (c *MySQLErrorClassifier) Classify(err error) ErrorClassification {
	if errors.Is(err, mysql.ErrInvalidConn) {
		return Retryable
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrDeadlock, mysqlErrLockWaitTimeout:
			return Retryable
		}
	}

	return NonRetryable
}

func (c *MySQLErrorClassifier) IsUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlErrDuplicateEntry
}
