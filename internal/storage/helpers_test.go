// ABOUTME: Shared test helpers for storage backend tests.
// ABOUTME: Provides isolated SQLite and key-value store instances per test.
package storage

import (
	"path/filepath"
	"testing"
)

// backendCase names one Repository implementation for suite-style
// tests that must hold on both backends.
type backendCase struct {
	name string
	open func(t *testing.T) Repository
}

func backends() []backendCase {
	return []backendCase{
		{name: "sqlite", open: func(t *testing.T) Repository { return setupTestDB(t) }},
		{name: "kv", open: func(t *testing.T) Repository { return setupTestKV(t) }},
	}
}

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "lift.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func setupTestKV(t *testing.T) *KVStore {
	t.Helper()

	kv, err := OpenKV(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open kv store: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

// fptr is shorthand for weight literals in tests.
func fptr(v float64) *float64 {
	return &v
}
