package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// newTestDB は一時ディレクトリ上のSQLiteデータベースを用意する。
// マイグレーションパッケージに依存しないよう、スキーマは直接作成する。
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE kv_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return db
}

// --- テスト ---

func TestGet_MissingKey_ReturnsNotFound(t *testing.T) {
	repo := NewSQLiteKVRepo(newTestDB(t))

	value, found, err := repo.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("expected found=false for missing key")
	}
	if value != "" {
		t.Errorf("value = %q, want empty", value)
	}
}

func TestSetAndGet_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteKVRepo(newTestDB(t))

	if err := repo.Set(ctx, "user", `{"id":"u1"}`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, found, err := repo.Get(ctx, "user")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("expected found=true")
	}
	if value != `{"id":"u1"}` {
		t.Errorf("value = %q, want %q", value, `{"id":"u1"}`)
	}
}

func TestSet_OverwritesExistingValue(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteKVRepo(newTestDB(t))

	if err := repo.Set(ctx, "user", "first"); err != nil {
		t.Fatalf("first Set() error = %v", err)
	}
	if err := repo.Set(ctx, "user", "second"); err != nil {
		t.Fatalf("second Set() error = %v", err)
	}

	value, found, err := repo.Get(ctx, "user")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("expected found=true")
	}
	if value != "second" {
		t.Errorf("value = %q, want %q", value, "second")
	}
}

func TestRemove_DeletesKey(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteKVRepo(newTestDB(t))

	if err := repo.Set(ctx, "user", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := repo.Remove(ctx, "user"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	_, found, err := repo.Get(ctx, "user")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("expected key to be removed")
	}
}

func TestRemove_MissingKey_NoError(t *testing.T) {
	repo := NewSQLiteKVRepo(newTestDB(t))

	if err := repo.Remove(context.Background(), "missing"); err != nil {
		t.Errorf("Remove() error = %v, want nil for missing key", err)
	}
}

func TestKeys_AreIndependent(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteKVRepo(newTestDB(t))

	if err := repo.Set(ctx, "user", "u"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := repo.Set(ctx, "settings", "s"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := repo.Remove(ctx, "user"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	value, found, err := repo.Get(ctx, "settings")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found || value != "s" {
		t.Errorf("settings = (%q, %v), want (%q, true)", value, found, "s")
	}
}
