package storage

import (
	"path/filepath"
	"testing"
)

func TestRunMigrations_CreatesKVStoreTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrate_test.db")

	if err := RunMigrations(path); err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	// kv_storeテーブルが存在し、書き込めること
	if _, err := db.Exec(`INSERT INTO kv_store (key, value) VALUES ('k', 'v')`); err != nil {
		t.Fatalf("expected kv_store table to exist, got %v", err)
	}

	var value string
	if err := db.QueryRow(`SELECT value FROM kv_store WHERE key = 'k'`).Scan(&value); err != nil {
		t.Fatalf("failed to read back row: %v", err)
	}
	if value != "v" {
		t.Errorf("value = %q, want %q", value, "v")
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migrate_twice.db")

	if err := RunMigrations(path); err != nil {
		t.Fatalf("first RunMigrations() error = %v", err)
	}
	// 最新の状態で再実行してもエラーにならない（ErrNoChange）
	if err := RunMigrations(path); err != nil {
		t.Fatalf("second RunMigrations() error = %v", err)
	}
}

func TestOpen_CreatesUsableConnection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "open_test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
