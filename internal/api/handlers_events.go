package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/notepadhq/notepad-backend/internal/api/respond"
	"github.com/notepadhq/notepad-backend/internal/auth"
	"github.com/notepadhq/notepad-backend/internal/model"
	"github.com/notepadhq/notepad-backend/internal/store"
)

type EventsHandler struct {
	store    store.Store
	verifier auth.Verifier
}

func NewEventsHandler(s store.Store, v auth.Verifier) *EventsHandler {
	return &EventsHandler{store: s, verifier: v}
}

// parseEventTime accepts RFC3339 and the HTML datetime-local layout the
// dashboard form submits.
func parseEventTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", s)
}

// CreateEvent POST /events (form-encoded)
func (h *EventsHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r, h.verifier)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		respond.WriteBadRequest(w, "Invalid form body")
		return
	}
	title := r.PostFormValue("title")
	if title == "" {
		respond.WriteBadRequest(w, "title is required")
		return
	}
	start, err := parseEventTime(r.PostFormValue("start_time"))
	if err != nil {
		respond.WriteBadRequest(w, "Invalid start_time")
		return
	}
	end, err := parseEventTime(r.PostFormValue("end_time"))
	if err != nil {
		respond.WriteBadRequest(w, "Invalid end_time")
		return
	}

	out, err := h.store.Events().Create(r.Context(), &model.Event{
		UserID:      user.ID,
		Title:       title,
		Description: r.PostFormValue("description"),
		StartTime:   start,
		EndTime:     end,
	})
	if err != nil {
		respond.WriteInternalError(w, "Database error: "+err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListEvents GET /events, ordered by start time ascending.
func (h *EventsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r, h.verifier)
	if !ok {
		return
	}

	out, err := h.store.Events().List(r.Context(), model.ListEventsRequest{
		OwnerID:          user.ID,
		OrderByStartTime: true,
	})
	if err != nil {
		respond.WriteInternalError(w, "Database error: "+err.Error())
		return
	}
	if out == nil {
		out = []*model.Event{}
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// DeleteEvent DELETE /events/{id}
func (h *EventsHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r, h.verifier)
	if !ok {
		return
	}

	if err := h.store.Events().Delete(r.Context(), user.ID, mux.Vars(r)["id"]); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "Event not found or unauthorized")
			return
		}
		respond.WriteInternalError(w, "Database error: "+err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}
