package migrations

import (
	"path/filepath"
	"testing"

	"github.com/Simplici0/ebs-estimator/internal/db"
)

func TestUpIsIdempotent(t *testing.T) {
	database, err := db.Open(filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	for i := 0; i < 3; i++ {
		if err := Up(database); err != nil {
			t.Fatalf("run migrations (iteration=%d): %v", i, err)
		}
	}

	v, err := Version(database)
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if v != 1 {
		t.Fatalf("version = %d, want 1", v)
	}

	var n int
	if err := database.QueryRow(`SELECT COUNT(*) FROM email_deliveries`).Scan(&n); err != nil {
		t.Fatalf("query email_deliveries: %v", err)
	}
}
