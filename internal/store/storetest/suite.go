package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/notepadhq/notepad-backend/internal/model"
	"github.com/notepadhq/notepad-backend/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	ownerA := "u-" + uuid.New().String()
	ownerB := "u-" + uuid.New().String()

	// Notes: create / list
	n, err := s.Notes().Create(ctx, &model.Note{UserID: ownerA, Title: "Groceries", Content: "Buy milk", Status: model.StatusPending})
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if n.ID == "" {
		t.Fatalf("CreateNote: empty id")
	}
	if n.Status != model.StatusPending {
		t.Fatalf("CreateNote: status %q", n.Status)
	}
	lst, err := s.Notes().List(ctx, model.ListNotesRequest{OwnerID: ownerA})
	if err != nil || len(lst) != 1 {
		t.Fatalf("ListNotes: n=%d err=%v", len(lst), err)
	}

	// Owner isolation: B sees nothing and cannot touch A's rows by id.
	if lst, err := s.Notes().List(ctx, model.ListNotesRequest{OwnerID: ownerB}); err != nil || len(lst) != 0 {
		t.Fatalf("ListNotes foreign owner: n=%d err=%v", len(lst), err)
	}
	title := "stolen"
	if _, err := s.Notes().Update(ctx, ownerB, n.ID, &model.NoteUpdate{Title: &title}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Update foreign note: want ErrNotFound, got %v", err)
	}
	if err := s.Notes().Delete(ctx, ownerB, n.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Delete foreign note: want ErrNotFound, got %v", err)
	}

	// Partial update touches only provided fields.
	st := model.StatusDone
	upd, err := s.Notes().Update(ctx, ownerA, n.ID, &model.NoteUpdate{Status: &st})
	if err != nil {
		t.Fatalf("UpdateNote: %v", err)
	}
	if upd.Status != model.StatusDone || upd.Title != "Groceries" || upd.Content != "Buy milk" {
		t.Fatalf("UpdateNote: unexpected row %+v", upd)
	}

	// Missing row reads identically to a foreign row.
	if _, err := s.Notes().Update(ctx, ownerA, uuid.New().String(), &model.NoteUpdate{Title: &title}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Update missing note: want ErrNotFound, got %v", err)
	}

	// Events: create out of order, ordered listing sorts by start time.
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	late, err := s.Events().Create(ctx, &model.Event{UserID: ownerA, Title: "Late", StartTime: base.Add(48 * time.Hour), EndTime: base.Add(49 * time.Hour)})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	early, err := s.Events().Create(ctx, &model.Event{UserID: ownerA, Title: "Early", StartTime: base, EndTime: base.Add(time.Hour)})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	evs, err := s.Events().List(ctx, model.ListEventsRequest{OwnerID: ownerA, OrderByStartTime: true})
	if err != nil || len(evs) != 2 {
		t.Fatalf("ListEvents: n=%d err=%v", len(evs), err)
	}
	if evs[0].ID != early.ID || evs[1].ID != late.ID {
		t.Fatalf("ListEvents: not ordered by start time: %q, %q", evs[0].Title, evs[1].Title)
	}

	// Event owner isolation.
	if err := s.Events().Delete(ctx, ownerB, early.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Delete foreign event: want ErrNotFound, got %v", err)
	}
	if err := s.Events().Delete(ctx, ownerA, early.ID); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}

	// Delete note for real.
	if err := s.Notes().Delete(ctx, ownerA, n.ID); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	if lst, err := s.Notes().List(ctx, model.ListNotesRequest{OwnerID: ownerA}); err != nil || len(lst) != 0 {
		t.Fatalf("ListNotes after delete: n=%d err=%v", len(lst), err)
	}
}
