// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrapped: %w", pgError(pgerrcode.DeadlockDetected))))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))

	assert.True(t, c.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.False(t, c.IsUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.False(t, c.IsUniqueViolation(errors.New("plain")))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrapped: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))

	assert.True(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.False(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}))
}

func TestMySQLErrorClassifier(t *testing.T) {
	c := NewMySQLErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(&mysql.MySQLError{Number: mysqlErrDeadlock}))
	assert.Equal(t, Retryable, c.Classify(&mysql.MySQLError{Number: mysqlErrLockWaitTimeout}))
	assert.Equal(t, Retryable, c.Classify(mysql.ErrInvalidConn))
	assert.Equal(t, NonRetryable, c.Classify(&mysql.MySQLError{Number: mysqlErrDuplicateEntry}))

	assert.True(t, c.IsUniqueViolation(&mysql.MySQLError{Number: mysqlErrDuplicateEntry}))
	assert.False(t, c.IsUniqueViolation(&mysql.MySQLError{Number: mysqlErrDeadlock}))
}
