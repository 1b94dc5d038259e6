// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema of every supported database and
// applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite3/*.sql postgres/*.sql mysql/*.sql
var embedMigrations embed.FS

// goose dialect and migration directory per database driver name.
var dialects = map[string]struct {
	dialect string
	dir     string
}{
	"sqlite3":  {dialect: "sqlite3", dir: "sqlite3"},
	"postgres": {dialect: "postgres", dir: "postgres"},
	"mysql":    {dialect: "mysql", dir: "mysql"},
}

// Migrate applies every pending migration for driver to db.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(d.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
