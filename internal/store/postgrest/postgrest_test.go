package postgrest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/notepadhq/notepad-backend/internal/model"
)

// fakeSupabase records the last request and answers with a canned response.
type fakeSupabase struct {
	status int
	body   string

	lastMethod string
	lastPath   string
	lastQuery  map[string]string
	lastAuth   string
	lastKey    string
	lastPrefer string
	lastBody   map[string]any
}

func (f *fakeSupabase) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.lastMethod = r.Method
		f.lastPath = r.URL.Path
		f.lastQuery = map[string]string{}
		for k, v := range r.URL.Query() {
			f.lastQuery[k] = v[0]
		}
		f.lastAuth = r.Header.Get("Authorization")
		f.lastKey = r.Header.Get("apikey")
		f.lastPrefer = r.Header.Get("Prefer")
		f.lastBody = nil
		_ = json.NewDecoder(r.Body).Decode(&f.lastBody)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	}
}

func newTestStore(t *testing.T, f *fakeSupabase) (*restStore, func()) {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	s := New(srv.URL, "anon-key", 2*time.Second).(*restStore)
	return s, srv.Close
}

func TestNotesCreate_PostsScopedRow(t *testing.T) {
	f := &fakeSupabase{status: http.StatusCreated, body: `[{"id":"n1","user_id":"u1","title":"t","content":"c","status":"Pending"}]`}
	s, done := newTestStore(t, f)
	defer done()

	out, err := s.Notes().Create(context.Background(), &model.Note{UserID: "u1", Title: "t", Content: "c", Status: model.StatusPending})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.ID != "n1" {
		t.Fatalf("unexpected row: %+v", out)
	}
	if f.lastMethod != http.MethodPost || f.lastPath != "/rest/v1/notes" {
		t.Fatalf("unexpected request: %s %s", f.lastMethod, f.lastPath)
	}
	if f.lastBody["user_id"] != "u1" {
		t.Fatalf("owner id not set on insert: %+v", f.lastBody)
	}
	if f.lastKey != "anon-key" || f.lastAuth != "Bearer anon-key" {
		t.Fatalf("service key headers missing: %q %q", f.lastKey, f.lastAuth)
	}
	if f.lastPrefer != "return=representation" {
		t.Fatalf("missing Prefer header, got %q", f.lastPrefer)
	}
}

func TestNotesList_FiltersByOwner(t *testing.T) {
	f := &fakeSupabase{status: http.StatusOK, body: `[]`}
	s, done := newTestStore(t, f)
	defer done()

	if _, err := s.Notes().List(context.Background(), model.ListNotesRequest{OwnerID: "u1", Limit: 3}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if f.lastQuery["user_id"] != "eq.u1" {
		t.Fatalf("owner filter missing: %+v", f.lastQuery)
	}
	if f.lastQuery["limit"] != "3" {
		t.Fatalf("limit missing: %+v", f.lastQuery)
	}
}

func TestNotesUpdate_EmptyRepresentationIsNotFound(t *testing.T) {
	f := &fakeSupabase{status: http.StatusOK, body: `[]`}
	s, done := newTestStore(t, f)
	defer done()

	title := "new"
	_, err := s.Notes().Update(context.Background(), "u1", "foreign-id", &model.NoteUpdate{Title: &title})
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if f.lastQuery["id"] != "eq.foreign-id" || f.lastQuery["user_id"] != "eq.u1" {
		t.Fatalf("row filters missing: %+v", f.lastQuery)
	}
	if _, ok := f.lastBody["content"]; ok {
		t.Fatalf("unset fields must not be patched: %+v", f.lastBody)
	}
}

func TestNotesDelete_NotFoundForForeignRow(t *testing.T) {
	f := &fakeSupabase{status: http.StatusOK, body: `[]`}
	s, done := newTestStore(t, f)
	defer done()

	err := s.Notes().Delete(context.Background(), "u1", "someone-elses")
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEventsList_OrderedByStartTime(t *testing.T) {
	f := &fakeSupabase{status: http.StatusOK, body: `[]`}
	s, done := newTestStore(t, f)
	defer done()

	if _, err := s.Events().List(context.Background(), model.ListEventsRequest{OwnerID: "u1", OrderByStartTime: true}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if f.lastQuery["order"] != "start_time.asc" {
		t.Fatalf("order param missing: %+v", f.lastQuery)
	}
}

func TestEventsList_UnorderedForChatContext(t *testing.T) {
	f := &fakeSupabase{status: http.StatusOK, body: `[]`}
	s, done := newTestStore(t, f)
	defer done()

	if _, err := s.Events().List(context.Background(), model.ListEventsRequest{OwnerID: "u1", Limit: 3}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if _, ok := f.lastQuery["order"]; ok {
		t.Fatalf("chat-context listing must not request ordering: %+v", f.lastQuery)
	}
}

func TestEventsCreate_SendsRFC3339Times(t *testing.T) {
	f := &fakeSupabase{status: http.StatusCreated, body: `[{"id":"e1","user_id":"u1","title":"t"}]`}
	s, done := newTestStore(t, f)
	defer done()

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	_, err := s.Events().Create(context.Background(), &model.Event{
		UserID: "u1", Title: "t", StartTime: start, EndTime: start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if f.lastBody["start_time"] != "2026-09-01T09:00:00Z" {
		t.Fatalf("unexpected start_time: %v", f.lastBody["start_time"])
	}
	if f.lastBody["end_time"] != "2026-09-01T10:00:00Z" {
		t.Fatalf("unexpected end_time: %v", f.lastBody["end_time"])
	}
}

func TestStoreError_SurfacesStatus(t *testing.T) {
	f := &fakeSupabase{status: http.StatusInternalServerError, body: `{"message":"boom"}`}
	s, done := newTestStore(t, f)
	defer done()

	if _, err := s.Notes().List(context.Background(), model.ListNotesRequest{OwnerID: "u1"}); err == nil {
		t.Fatalf("expected error for 500 response")
	}
}
