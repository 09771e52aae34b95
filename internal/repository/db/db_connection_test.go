package db

import (
	"path/filepath"
	"testing"
)

func TestInitDB_CreatesSchemaAndIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 2; i++ {
		conn, err := InitDB(path)
		if err != nil {
			t.Fatalf("InitDB run %d: %v", i+1, err)
		}

		for _, table := range []string{"users", "todos", "activity_events"} {
			var name string
			err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
			if err != nil {
				t.Fatalf("table %s missing: %v", table, err)
			}
		}
		if err := conn.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}
}

func TestInitDB_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "nested", "test.db")
	if _, err := InitDB(path); err == nil {
		t.Fatalf("expected error for unreachable path")
	}
}
