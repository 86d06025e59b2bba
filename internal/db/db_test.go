package db

import (
	"path/filepath"
	"testing"
)

func TestOpenUsesWAL(t *testing.T) {
	database, err := Open(filepath.Join(t.TempDir(), "estimator.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer database.Close()

	var mode string
	if err := database.QueryRow(`PRAGMA journal_mode`).Scan(&mode); err != nil {
		t.Fatalf("read journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Fatalf("journal_mode = %q, want wal", mode)
	}
}

func TestOpenFailsForMissingDirectory(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing", "estimator.db")); err == nil {
		t.Fatalf("expected error for a path in a missing directory")
	}
}
