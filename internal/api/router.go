package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/notepadhq/notepad-backend/internal/api/recovery"
	"github.com/notepadhq/notepad-backend/internal/auth"
	"github.com/notepadhq/notepad-backend/internal/store"
)

// NewRouter wires all HTTP routes to handlers.
func NewRouter(v auth.Verifier, st store.Store, chat ChatService) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)
	root.Use(corsMiddleware)

	// Preflight requests must reach the CORS middleware.
	root.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	// Banner and health
	health := NewHealthHandler()
	root.HandleFunc("/", health.Banner).Methods("GET")
	root.HandleFunc("/health", health.CheckHealth).Methods("GET")

	// Notes
	notes := NewNotesHandler(st, v)
	root.HandleFunc("/notes", notes.CreateNote).Methods("POST")
	root.HandleFunc("/notes", notes.ListNotes).Methods("GET")
	root.HandleFunc("/notes/{id}", notes.UpdateNote).Methods("PUT")
	root.HandleFunc("/notes/{id}", notes.DeleteNote).Methods("DELETE")

	// Events
	events := NewEventsHandler(st, v)
	root.HandleFunc("/events", events.CreateEvent).Methods("POST")
	root.HandleFunc("/events", events.ListEvents).Methods("GET")
	root.HandleFunc("/events/{id}", events.DeleteEvent).Methods("DELETE")

	// Chat
	chatHandler := NewChatHandler(chat, v)
	root.HandleFunc("/chat", chatHandler.HandleChat).Methods("POST")

	return root
}
