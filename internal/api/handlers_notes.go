package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/notepadhq/notepad-backend/internal/api/respond"
	"github.com/notepadhq/notepad-backend/internal/auth"
	"github.com/notepadhq/notepad-backend/internal/model"
	"github.com/notepadhq/notepad-backend/internal/store"
)

type NotesHandler struct {
	store    store.Store
	verifier auth.Verifier
}

func NewNotesHandler(s store.Store, v auth.Verifier) *NotesHandler {
	return &NotesHandler{store: s, verifier: v}
}

// CreateNote POST /notes
func (h *NotesHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r, h.verifier)
	if !ok {
		return
	}

	var req struct {
		Title   string           `json:"title"`
		Content string           `json:"content"`
		Status  model.NoteStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.Status == "" {
		req.Status = model.StatusPending
	}
	if !req.Status.Valid() {
		respond.WriteBadRequest(w, "Invalid status: "+string(req.Status))
		return
	}

	out, err := h.store.Notes().Create(r.Context(), &model.Note{
		UserID:  user.ID,
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		respond.WriteInternalError(w, "Database error: "+err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListNotes GET /notes
func (h *NotesHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r, h.verifier)
	if !ok {
		return
	}

	out, err := h.store.Notes().List(r.Context(), model.ListNotesRequest{OwnerID: user.ID})
	if err != nil {
		respond.WriteInternalError(w, "Database error: "+err.Error())
		return
	}
	if out == nil {
		out = []*model.Note{}
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// UpdateNote PUT /notes/{id}
func (h *NotesHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r, h.verifier)
	if !ok {
		return
	}

	var patch model.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if patch.Empty() {
		respond.WriteBadRequest(w, "No fields provided to update")
		return
	}
	if patch.Status != nil && !patch.Status.Valid() {
		respond.WriteBadRequest(w, "Invalid status: "+string(*patch.Status))
		return
	}

	out, err := h.store.Notes().Update(r.Context(), user.ID, mux.Vars(r)["id"], &patch)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "Note not found or unauthorized")
			return
		}
		respond.WriteInternalError(w, "Database error: "+err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// DeleteNote DELETE /notes/{id}
func (h *NotesHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r, h.verifier)
	if !ok {
		return
	}

	if err := h.store.Notes().Delete(r.Context(), user.ID, mux.Vars(r)["id"]); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "Note not found or unauthorized")
			return
		}
		respond.WriteInternalError(w, "Database error: "+err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
}
