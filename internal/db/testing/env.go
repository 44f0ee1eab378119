// Copyright 2025 SAP SE
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/cobaltcore-dev/rackyard/internal/db"
	"github.com/go-gorp/gorp"
	_ "github.com/mattn/go-sqlite3"
)

type DBEnv struct {
	db.DB
	Close func()
}

// Set up a fresh sqlite database for a test. The database file lives in
// the test's temp dir and is dropped together with it.
func SetupDBEnv(t *testing.T) DBEnv {
	tmpDir := t.TempDir()
	sqlDB, err := sql.Open("sqlite3", tmpDir+"/test.db")
	if err != nil {
		t.Fatal(err)
	}
	dbMap := &gorp.DbMap{Db: sqlDB, Dialect: gorp.SqliteDialect{}}
	dbMap.TraceOn("[gorp]", log.New(os.Stdout, "rackyard:", log.Lmicroseconds))
	return DBEnv{
		DB:    db.DB{DbMap: dbMap},
		Close: func() { dbMap.Db.Close() },
	}
}

// Check if a table exists in the database.
// Note: this overrides the method in db.DB, because sqlite needs
// a different query to check if a table exists.
func (d *DBEnv) TableExists(table db.Table) bool {
	query := "SELECT name FROM sqlite_master WHERE type='table' AND name = :name"
	var name string
	err := d.SelectOne(&name, query, map[string]interface{}{"name": table.TableName()})
	return err == nil
}
