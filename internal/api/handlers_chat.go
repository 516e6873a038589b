package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/notepadhq/notepad-backend/internal/api/respond"
	"github.com/notepadhq/notepad-backend/internal/auth"
	"github.com/notepadhq/notepad-backend/internal/model"
)

// ChatService runs one assistant turn for a verified user.
type ChatService interface {
	Chat(ctx context.Context, user *model.User, message string) string
}

type ChatHandler struct {
	assistant ChatService
	verifier  auth.Verifier
}

func NewChatHandler(a ChatService, v auth.Verifier) *ChatHandler {
	return &ChatHandler{assistant: a, verifier: v}
}

// HandleChat POST /chat (form-encoded). AI-provider failures surface as a
// conversational reply with status 200, never a 5xx.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r, h.verifier)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		respond.WriteBadRequest(w, "Invalid form body")
		return
	}
	message := r.PostFormValue("message")
	if strings.TrimSpace(message) == "" {
		respond.WriteBadRequest(w, "Message cannot be empty")
		return
	}

	reply := h.assistant.Chat(r.Context(), user, message)
	respond.WriteJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
