// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests always run against
// the authoritative schema; do not hardcode CREATE TABLE statements here.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/stockroom/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedClient inserts a test client and returns its id.
func seedClient(t *testing.T, db *sql.DB, name, address, email string) int64 {
	t.Helper()
	if name == "" {
		name = "Test Client"
	}
	if address == "" {
		address = "Test Street 1"
	}
	if email == "" {
		email = "test@example.com"
	}
	res, err := db.Exec("INSERT INTO clients (name, address, email) VALUES (?, ?, ?)", name, address, email)
	if err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedProduct inserts a test product and returns its id.
func seedProduct(t *testing.T, db *sql.DB, name string, price, quantity int64) int64 {
	t.Helper()
	if name == "" {
		name = "Test Product"
	}
	res, err := db.Exec("INSERT INTO products (name, price, quantity) VALUES (?, ?, ?)", name, price, quantity)
	if err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// countRows returns the number of rows in a table.
func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}
