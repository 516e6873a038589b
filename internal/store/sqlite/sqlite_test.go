package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/notepadhq/notepad-backend/internal/model"
	"github.com/notepadhq/notepad-backend/internal/store"
	"github.com/notepadhq/notepad-backend/internal/store/storetest"
)

func makeSQLiteStore(t *testing.T) store.Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "notepad-test.db"))
	if err != nil {
		t.Fatalf("sqlite open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewWithDB(db)
}

func TestSQLiteStore_Compliance(t *testing.T) {
	storetest.Run(t, makeSQLiteStore)
}

func TestSQLiteStore_ListLimit(t *testing.T) {
	s := makeSQLiteStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := s.Notes().Create(ctx, &model.Note{UserID: "u1", Title: "t", Content: "c"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	lst, err := s.Notes().List(ctx, model.ListNotesRequest{OwnerID: "u1", Limit: 3})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lst) != 3 {
		t.Fatalf("limit not applied, got %d rows", len(lst))
	}
}

func TestSQLiteStore_HealthPing(t *testing.T) {
	s := makeSQLiteStore(t)
	if err := s.HealthPing(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
