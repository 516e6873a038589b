package postgres

import (
	"os"
	"testing"

	"github.com/notepadhq/notepad-backend/internal/store"
	"github.com/notepadhq/notepad-backend/internal/store/storetest"
)

func makePGStore(t *testing.T) store.Store {
	t.Helper()
	dsn := os.Getenv("NOTEPAD_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("NOTEPAD_POSTGRES_DSN not set; skipping postgres store integration test")
	}
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("postgres open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewWithDB(db)
}

func TestPostgresStore_Compliance(t *testing.T) {
	storetest.Run(t, makePGStore)
}

func TestOpen_EmptyDSN(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatalf("expected error for empty DSN")
	}
}

// Open applies the schema, so reopening an already-bootstrapped database
// must succeed.
func TestOpen_SchemaIsIdempotent(t *testing.T) {
	dsn := os.Getenv("NOTEPAD_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("NOTEPAD_POSTGRES_DSN not set; skipping postgres bootstrap test")
	}
	for i := 0; i < 2; i++ {
		db, err := Open(dsn)
		if err != nil {
			t.Fatalf("open pass %d: %v", i, err)
		}
		_ = db.Close()
	}
}
